package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/riskconsole/pkg/cryptox"
	"github.com/aussiebroadwan/riskconsole/pkg/jwtx"
)

// InitSigningKey returns the access token signer and a key set holding its
// public half.
//
// With an empty path a new Ed25519 key is generated on every start and all
// tokens issued before the restart stop verifying. With a path the key is
// read from it, or generated and written there on first start.
func InitSigningKey(path string, logger *slog.Logger) (jwtx.Signer, *jwtx.KeySet, error) {
	var (
		pemKey  []byte
		created bool
		err     error
	)
	if path == "" {
		pemKey, err = cryptox.GenerateEd25519Key()
	} else {
		pemKey, created, err = cryptox.LoadOrCreateEd25519Key(path)
	}
	if err != nil {
		return nil, nil, err
	}

	// The kid follows the key, so a persisted key keeps it across restarts.
	kid, err := cryptox.KeyID(pemKey)
	if err != nil {
		return nil, nil, err
	}

	signer, err := jwtx.NewSignerEdDSA(kid, pemKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load signing key: %w", err)
	}

	keys := jwtx.NewKeySet()
	if err := keys.AddSigner(signer); err != nil {
		return nil, nil, err
	}

	switch {
	case path == "":
		logger.Warn("generated ephemeral signing key, tokens will not survive a restart", "kid", kid)
	case created:
		logger.Info("signing key created", "path", path, "kid", kid)
	default:
		logger.Info("signing key loaded", "path", path, "kid", kid)
	}
	return signer, keys, nil
}
