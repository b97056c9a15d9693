package docview

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"os"
	"time"

	"github.com/sony/sonyflake"
)

var flake = sonyflake.NewSonyflake(sonyflake.Settings{
	MachineID: func() (uint16, error) {
		return uint16(os.Getpid()), nil
	},
})

// NewID synthesizes a 24-hex-char document id: a 4-byte unix timestamp
// followed by a Sonyflake id, so ids sort roughly by creation time.
func NewID() string {
	var b [12]byte
	binary.BigEndian.PutUint32(b[:4], uint32(time.Now().Unix()))

	id, err := flake.NextID()
	if err != nil {
		_, _ = rand.Read(b[4:])
	} else {
		binary.BigEndian.PutUint64(b[4:], id)
	}
	return hex.EncodeToString(b[:])
}

// ValidID reports whether s has the 24-hex-char document id shape.
func ValidID(s string) bool {
	if len(s) != 24 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
