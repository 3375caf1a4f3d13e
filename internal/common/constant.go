// Package common contains shared constants and sentinel errors used across
// SaludConecta components.
package common

// SessionUserKey is the metadata key under which the signed-in user is
// persisted as JSON between runs.
const SessionUserKey = "saludconecta_user"

// AppName is shown in the terminal header and used as the token issuer.
const AppName = "SaludConecta"
