package main

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"os"

	"github.com/complex-gh/walletgen/internal/log"
	"golang.org/x/crypto/ssh"
)

// loadSSHKey reads an ed25519 private key in OpenSSH format, asking for its
// passphrase when it is encrypted.
func loadSSHKey(path string) (*ed25519.PrivateKey, error) {
	// G304: path is user-provided input, which is expected for a CLI tool
	bts, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("could not read key: %w", err)
	}

	key, err := parsePrivateKey(bts, nil)
	if err != nil && isPasswordError(err) {
		pass, err := askKeyPassphrase(path)
		if err != nil {
			return nil, err
		}
		key, err = parsePrivateKey(bts, pass)
		if err != nil {
			return nil, fmt.Errorf("could not parse key with passphrase: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("could not parse key: %w", err)
	} else {
		log.CLI.Warn().Str("key", path).Msg("ssh key is not password-protected")
	}

	switch key := key.(type) {
	case *ed25519.PrivateKey:
		return key, nil
	default:
		return nil, fmt.Errorf("unsupported key type %T: only ed25519 keys can be used", key)
	}
}

func parsePrivateKey(bts, pass []byte) (interface{}, error) {
	if len(pass) == 0 {
		//nolint: wrapcheck
		return ssh.ParseRawPrivateKey(bts)
	}
	//nolint: wrapcheck
	return ssh.ParseRawPrivateKeyWithPassphrase(bts, pass)
}

func isPasswordError(err error) bool {
	var kerr *ssh.PassphraseMissingError
	return errors.As(err, &kerr)
}
