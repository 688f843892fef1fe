package alert

import (
	"context"
	"fmt"
)

// Check validates the configuration surface: credential presence and roster referential
// integrity. With live set, it additionally performs a real login handshake against the portal.
// All findings are collected and returned; a finding never aborts the remaining checks.
func (service *Service) Check(ctx context.Context, live bool) []error {
	var findings []error

	if !service.Config.HasCredentials() {
		findings = append(findings, ErrMissingCredentials)
	}
	if len(service.Index.Employees) == 0 {
		findings = append(findings, fmt.Errorf("the roster contains no employees"))
	}
	if len(service.Index.Teams) == 0 {
		findings = append(findings, fmt.Errorf("the roster contains no teams"))
	}
	findings = append(findings, service.Index.Validate()...)

	if live && service.Config.HasCredentials() {
		if _, err := service.Portal.Authenticate(ctx, service.Config.HRMUsername, service.Config.HRMPassword); err != nil {
			findings = append(findings, fmt.Errorf("live authentication probe failed: %w", err))
		}
	}

	return findings
}
