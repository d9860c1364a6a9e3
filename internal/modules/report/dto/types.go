package dto

import diagdto "sehat/internal/modules/diagnosis/dto"

type ExportInput struct {
	Record      diagdto.RecordOutput
	PatientName string
	Path        string
}

type ExportOutput struct {
	Path  string
	Bytes int
}
