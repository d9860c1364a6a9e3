package out

import (
	diagdomain "sehat/internal/modules/diagnosis/domain"
)

// Renderer turns one diagnosis record into a printable document.
type Renderer interface {
	Render(record diagdomain.Record, patientName string) ([]byte, error)
}

// Sink persists a rendered document.
type Sink interface {
	Write(path string, data []byte) error
}
