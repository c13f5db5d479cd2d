package http

import (
	"intake/internal/core/application/usecases/queries"
	"intake/internal/generated/servers"
)

func toSession(v queries.GetSessionQueryResponse) servers.Session {
	session := servers.Session{
		Id:              v.ID.Bytes(),
		Stage:           servers.SessionStage(v.Stage),
		Version:         v.Version,
		Confirming:      v.Confirming,
		PickupAddress:   toAddress(v.PickupAddress),
		DeliveryAddress: toAddress(v.DeliveryAddress),
		PickupDate:      v.PickupDate,
		PickupTime:      v.PickupTime,
		PickupDateTime:  optional(v.PickupDateTime),
		Parcel: servers.Parcel{
			Weight:                  v.Parcel.Weight,
			Length:                  v.Parcel.Length,
			Width:                   v.Parcel.Width,
			Height:                  v.Parcel.Height,
			Contents:                v.Parcel.Contents,
			Category:                servers.ParcelCategory(v.Parcel.Category),
			CategoryLabel:           v.Parcel.CategoryLabel,
			SpecialInstructions:     v.Parcel.SpecialInstructions,
			InstructionsPlaceholder: v.Parcel.InstructionsPlaceholder,
		},
		Customer: servers.Customer{
			Name:  v.Customer.Name,
			Phone: v.Customer.Phone,
			Email: v.Customer.Email,
		},
		FormError:           optional(v.FormError),
		FormInfo:            optional(v.FormInfo),
		NotificationWarning: optional(v.NotificationWarning),
		ConfirmationMessage: optional(v.ConfirmationMessage),
	}
	if v.Estimate != nil {
		session.Estimate = &servers.RouteEstimate{
			DistanceKm:    v.Estimate.DistanceKm,
			TimeMinutes:   v.Estimate.TimeMinutes,
			Cost:          v.Estimate.Cost,
			FormattedCost: v.Estimate.FormattedCost,
		}
	}
	return session
}

func toAddress(a queries.AddressView) servers.Address {
	return servers.Address{Street: a.Street, City: a.City, PostalCode: a.PostalCode}
}

func toFormOptions(o queries.GetFormOptionsQueryResponse) servers.FormOptions {
	options := servers.FormOptions{
		TimeSlots:  make([]servers.TimeSlot, len(o.TimeSlots)),
		Categories: make([]servers.CategoryOption, len(o.Categories)),
	}
	for i, slot := range o.TimeSlots {
		options.TimeSlots[i] = servers.TimeSlot{Value: slot.Value, Label: slot.Label}
	}
	for i, c := range o.Categories {
		options.Categories[i] = servers.CategoryOption{
			Code:                    servers.ParcelCategory(c.Code),
			Label:                   c.Label,
			InstructionsPlaceholder: c.InstructionsPlaceholder,
		}
	}
	return options
}

// optional maps "" to an absent JSON field.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
