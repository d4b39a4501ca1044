// Package models declares the entities persisted by the library portal:
// users, their profiles, event hall reservations, the book catalog and
// book loans.
//
// Entities are plain structs tagged for sqlx (db), encoding/json (json) and
// go-playground/validator (validate). Field-level rules that must hold no
// matter how an entity is built, like the email format, are enforced by the
// New* constructors and Set* methods, which return a [*ValidationError]
// instead of mutating the entity.
//
// Serialize produces the map consumed by the HTTP layer.
package models
