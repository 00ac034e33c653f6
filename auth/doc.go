// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides token and admin key helpers.

# Session Tokens

Session tokens are random UUIDs:

	token := auth.GenerateSessionToken()
	token, err := auth.ParseSessionToken(r.Header.Get("X-Session-Token"))

They identify an in-memory ballot and nothing else. There are no accounts,
passwords or logins behind them.

# Admin Key

Creating elections requires the configured admin key in the X-Admin-Key
header:

	if err := auth.ValidateAdminKey(r.Header.Get("X-Admin-Key"), cfg.AdminKey); err != nil {
		// 401
	}

An empty configured key never validates.
*/
package auth
