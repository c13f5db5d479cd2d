// Package order holds the order details captured by the intake form and the
// rules they must satisfy before the wizard may leave the form.
//
// The package includes:
//   - Address, Parcel, Customer: value objects edited field by field through typed field enums
//   - Category: parcel handling categories with their French labels and instruction hints
//   - OrderDetails: the aggregate of everything the customer enters
//   - Validate: the ordered, fail-fast form rules with their customer-facing messages
//   - Schedule helpers: pickup time slots, date checks and French date formatting
//
// Inputs are stored verbatim while the customer types; nothing is rejected for being
// incomplete until Validate runs. Only structurally impossible input, such as an unknown
// field, a past date or a time outside the offered slots, is refused on write.
package order
