// Package launchcontext reads the SMART-on-FHIR launch context out of the
// access token the browser obtained from the authorization server. The token
// is parsed, not verified: authorization is enforced by the FHIR server the
// token is forwarded to, never by this service.
package launchcontext

import (
	"strings"

	"carelink-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
)

type LaunchContext struct {
	PatientID   string
	EncounterID string
	Scope       string
}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(tokenString string) (*LaunchContext, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(strings.TrimSpace(tokenString), claims); err != nil {
		return nil, exceptions.ErrLaunchTokenInvalid(err)
	}

	launchContext := &LaunchContext{}
	if patient, ok := claims["patient"].(string); ok {
		launchContext.PatientID = patient
	}
	if encounter, ok := claims["encounter"].(string); ok {
		launchContext.EncounterID = encounter
	}
	if scope, ok := claims["scope"].(string); ok {
		launchContext.Scope = scope
	}
	return launchContext, nil
}
