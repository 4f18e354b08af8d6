// Package domain contains the core domain entities and types used by the
// registrar. These types represent the business concepts (registrations,
// pricing policies, attachments and sessions) and are intentionally free of
// infrastructure concerns so they can be shared across packages.
package domain
