// Package services provides domain services that orchestrate business operations
// across the order aggregate and its persistence abstraction. It implements
// workflows that don't naturally belong to the aggregate root itself.
//
// The package includes:
//   - OrderService: creation, lifecycle transitions and retrieval of orders
//
// Domain services coordinate between the aggregate and the repository port,
// keeping each operation to a single load and a single save.
package services
