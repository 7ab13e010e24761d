// Copyright (c) 2026 the pollsite authors.
// MIT licensed; see LICENSE.

/*
Package auth guards the administrative endpoints.

# Admin Token

Management endpoints (question creation, choice setup, deletion) carry
the configured secret in the X-Admin-Token header:

	err := auth.ValidateAdminToken(r.Header.Get("X-Admin-Token"), cfg.AdminToken)

Validation compares in constant time via hmac.Equal. An empty
configured token never validates, so a misconfigured deployment fails
closed rather than open.

# Token Generation

GenerateAdminToken produces a random 192-bit URL-safe token for
operators setting up a deployment:

	token, err := auth.GenerateAdminToken()

Question and choice row IDs come from google/uuid, not from this
package.
*/
package auth
