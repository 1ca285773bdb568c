// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - AuthAPI, CartAPI, WishlistAPI: the remote endpoints the session, cart
//     and wishlist stores mirror
//   - CatalogAPI, OrderAPI, AddressAPI, PaymentAPI, UserAPI: the remaining
//     storefront and back-office endpoints
//   - CredentialStore: durable client storage for the access/refresh pair
//   - TokenDecoder: unverified decoding of the access credential payload
//   - ConfigStore: application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
