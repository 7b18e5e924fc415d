package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeMultiFieldToken(t *testing.T) {
	transactionDate := time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC)
	token := EncodeMultiFieldToken(transactionDate.Format(time.RFC3339Nano), "7f9c34a1-0000-0000-0000-000000000001")
	assert.NotEmpty(t, token, "Token should not be empty")

	fields, err := DecodeMultiFieldToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Len(t, fields, 2)

	decodedDate, err := time.Parse(time.RFC3339Nano, fields[0])
	assert.NoError(t, err)
	assert.Equal(t, transactionDate, decodedDate, "Date should survive the round trip")
	assert.Equal(t, "7f9c34a1-0000-0000-0000-000000000001", fields[1])
}

func TestDecodeMultiFieldTokenInvalidBase64(t *testing.T) {
	_, err := DecodeMultiFieldToken("not-valid-base64!!!")
	assert.Error(t, err, "Invalid base64 should be rejected")
}

func TestEncodeMultiFieldTokenSingleField(t *testing.T) {
	token := EncodeMultiFieldToken("only")
	fields, err := DecodeMultiFieldToken(token)
	assert.NoError(t, err)
	assert.Equal(t, []string{"only"}, fields)
}
