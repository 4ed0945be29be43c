// Package order provides domain entities and business logic for order management
// in the delivery service. It implements the Order aggregate root, the request
// validation rules applied to client payloads, and the status rules that gate
// updates and deletions.
//
// The package includes:
//   - Draft: an unvalidated order payload as decoded from a request
//   - Details: the validated, client-editable part of an order (NewDetails is the validator)
//   - Dish: a line item carrying a quantity
//   - Order: the aggregate root with identity, details and status
//   - Status: the lifecycle state with its change and deletion rules
//
// Key business rules:
//   - deliverTo, mobileNumber and a non-empty list of dishes are required
//   - every dish quantity is an integer greater than 0
//   - updates carry a legal status and never touch a delivered order
//   - an order can only be deleted while it is pending
//
// Validation is fail-fast: the first violated rule is reported and nothing
// after it is evaluated.
package order
