package order_test

import "intake/internal/core/domain/model/order"

func validDetails() order.OrderDetails {
	return order.RestoreOrderDetails(
		order.NewAddress("12 Rue des Lilas", "Lyon", "69003"),
		order.NewAddress("4 Quai de la Joliette", "Marseille", "13002"),
		"2026-10-18", "09:30",
		order.RestoreParcel("12.5", "40", "30", "20", "Pièces de machine", order.Fragile, ""),
		order.NewCustomer("Jean Dupont", "06 12 34 56 78", "jean.dupont@example.com"),
	)
}
