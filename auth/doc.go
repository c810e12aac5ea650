// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth derives the credentials that guard an election.

# Admin Keys

Admin keys are HMAC-SHA256 of the election ID under the admin salt:

	s := auth.NewSigner(adminSalt, slugSalt)
	key := s.AdminKey(electionID)
	err := s.VerifyAdminKey(electionID, key)

Keys are unpadded URL-safe base64. The same ID and salt always produce the same
key, so keys are never stored.

# Share Slugs

Share slugs are the first 8 bytes of an HMAC under the slug salt, base62
encoded:

	slug := s.ShareSlug(electionID)

# Election IDs

	id, err := auth.NewElectionID() // 32 hex characters
*/
package auth
