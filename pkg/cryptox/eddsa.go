package cryptox

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var ErrNotEd25519 = errors.New("cryptox: not an Ed25519 PKCS8 private key")

// GenerateEd25519Key returns a new Ed25519 private key as a PKCS8 PEM block.
func GenerateEd25519Key() ([]byte, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("cryptox: generate Ed25519 key: %w", err)
	}
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("cryptox: marshal PKCS8 key: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), nil
}

func parseEd25519Key(pemKey []byte) (ed25519.PrivateKey, error) {
	block, _ := pem.Decode(pemKey)
	if block == nil || block.Type != "PRIVATE KEY" {
		return nil, ErrNotEd25519
	}
	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotEd25519, err)
	}
	priv, ok := key.(ed25519.PrivateKey)
	if !ok {
		return nil, ErrNotEd25519
	}
	return priv, nil
}

// KeyID names a signing key by the first 16 hex digits of the SHA-256 of
// its public half. It is stable for as long as the key is.
func KeyID(pemKey []byte) (string, error) {
	priv, err := parseEd25519Key(pemKey)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(priv.Public().(ed25519.PublicKey))
	return hex.EncodeToString(sum[:8]), nil
}

// LoadOrCreateEd25519Key reads the PEM key at path, or generates one and
// writes it there with mode 0600. created reports the latter.
func LoadOrCreateEd25519Key(path string) (pemKey []byte, created bool, err error) {
	path = filepath.Clean(path)
	pemKey, err = os.ReadFile(path)
	switch {
	case err == nil:
		if _, err := parseEd25519Key(pemKey); err != nil {
			return nil, false, fmt.Errorf("cryptox: %s: %w", path, err)
		}
		return pemKey, false, nil
	case !errors.Is(err, os.ErrNotExist):
		return nil, false, fmt.Errorf("cryptox: read signing key: %w", err)
	}

	if pemKey, err = GenerateEd25519Key(); err != nil {
		return nil, false, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, false, err
	}
	// O_EXCL keeps two first starts from overwriting each other's key.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, false, fmt.Errorf("cryptox: write signing key: %w", err)
	}
	if _, err := f.Write(pemKey); err != nil {
		_ = f.Close()
		return nil, false, fmt.Errorf("cryptox: write signing key: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, false, err
	}
	return pemKey, true, nil
}
