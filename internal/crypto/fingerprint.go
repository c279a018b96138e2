package crypto

import (
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/iudanet/stenodict/internal/models"
)

// ErrFingerprintMismatch словарь изменился вне журнала отмены
var ErrFingerprintMismatch = errors.New("dictionary fingerprint mismatch")

// Fingerprint вычисляет BLAKE2b-256 от содержимого словаря в порядке записей.
// Путь словаря в хеш не входит: учитываются только ключи и переводы.
func Fingerprint(entries []models.Entry) string {
	// blake2b.New256 без ключа не возвращает ошибку
	h, _ := blake2b.New256(nil)

	for _, e := range entries {
		// Разделители 0x00/0x01 не встречаются в JSON-строках словаря
		h.Write([]byte(e.Key()))
		h.Write([]byte{0})
		h.Write([]byte(e.Translation))
		h.Write([]byte{1})
	}

	return hex.EncodeToString(h.Sum(nil))
}

// VerifyFingerprint проверяет, соответствует ли содержимое сохраненному отпечатку
func VerifyFingerprint(entries []models.Entry, fingerprint string) error {
	if fingerprint == "" {
		return fmt.Errorf("fingerprint cannot be empty")
	}

	if computed := Fingerprint(entries); computed != fingerprint {
		return fmt.Errorf("%w: expected %s, got %s", ErrFingerprintMismatch, fingerprint, computed)
	}

	return nil
}
