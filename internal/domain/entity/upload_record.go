package entity

import (
	"time"
)

// UploadRecord is one gallery entry. The filename is stored exactly as the
// client sent it. UploadedAt carries the serverTimestamp tag so Firestore
// assigns it at commit time; the process clock never orders the gallery.
type UploadRecord struct {
	Filename   string    `json:"filename" firestore:"filename"`
	GCSURL     string    `json:"gcs_url" firestore:"gcs_url"`
	UploadedAt time.Time `json:"uploaded_at" firestore:"uploaded_at,serverTimestamp"`
}
