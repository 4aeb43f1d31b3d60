// Package domain contains the core business entities for the university
// wellness booking system: users, appointments, the specialty directory
// and the enumerations that close over their string-typed fields.
//
// Entities serialize to JSON with the Spanish field names of the stored
// dataset, so a database written by the original front end remains
// readable here and vice versa.
package domain
