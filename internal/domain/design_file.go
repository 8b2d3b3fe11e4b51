package domain

// DesignFile описывает файл дизайна/макета, который хранится в S3.
type DesignFile struct {
	ID        string // uuid
	Bucket    string
	ObjectKey string
	Bytes     []byte
	// Передайте значение -1 в Size, если размер потока неизвестен
	// (внимание: при передаче значения -1 будет выделен большой объем памяти).
	Size        *int64
	ContentType *string // Example: "image/png"
}

func NewDesignFile(id string, bucket string, objectKey string, data []byte, size *int64, contentType *string) *DesignFile {
	return &DesignFile{
		ID:          id,
		Bucket:      bucket,
		ObjectKey:   objectKey,
		Bytes:       data,
		Size:        size,
		ContentType: contentType,
	}
}
