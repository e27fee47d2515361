package services

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

var errSealedTokenCorrupt = errors.New("sealed token is corrupt")

// TokenSealer encrypts bearer tokens before they reach a session store.
type TokenSealer struct {
	key [32]byte
}

func NewTokenSealer(secret string) (*TokenSealer, error) {
	if len(secret) < 16 {
		return nil, errors.New("session secret must be at least 16 characters")
	}
	s := &TokenSealer{}
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte("salonpro-web session token"))
	if _, err := io.ReadFull(r, s.key[:]); err != nil {
		return nil, fmt.Errorf("derive session key: %w", err)
	}
	return s, nil
}

func (s *TokenSealer) Seal(token string) ([]byte, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("read nonce: %w", err)
	}
	return secretbox.Seal(nonce[:], []byte(token), &nonce, &s.key), nil
}

func (s *TokenSealer) Open(sealed []byte) (string, error) {
	if len(sealed) < nonceSize+secretbox.Overhead {
		return "", errSealedTokenCorrupt
	}
	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])
	plain, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, &s.key)
	if !ok {
		return "", errSealedTokenCorrupt
	}
	return string(plain), nil
}
