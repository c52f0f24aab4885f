package core

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"hash"
	"io"
	"os"
	"strings"
)

// Size of the read buffer used when hashing files
const hashBlockSize = 65536

// GetHashImpl gets an implementation of hash.Hash for the given hash type string
func GetHashImpl(hashType string) (hash.Hash, error) {
	switch strings.ToLower(hashType) {
	case "sha1":
		return sha1.New(), nil
	case "sha256":
		return sha256.New(), nil
	case "md5":
		return md5.New(), nil
	}
	return nil, errors.New("hash implementation not found")
}

// HashFile streams the file at path through the given hash function and
// returns the hex digest.
func HashFile(path string, hashType string) (string, error) {
	h, err := GetHashImpl(hashType)
	if err != nil {
		return "", err
	}
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, hashBlockSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// FileMatchesHash reports whether a file exists at path with the given SHA1
// hex digest. A missing file is not an error, just a non-match.
func FileMatchesHash(path string, sha1Hex string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	digest, err := HashFile(path, "sha1")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(digest, sha1Hex), nil
}
