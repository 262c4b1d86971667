package types

// Envelope is the sealed payload handed back to callers for inclusion in an
// outer request body. EncryptedData is base64(nonce || ciphertext+tag).
type Envelope struct {
	EncryptedData string    `json:"encrypted_data"`
	SessionID     SessionID `json:"session_id"`
}
