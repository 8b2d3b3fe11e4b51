package infrastructure

import "github.com/teamkits/go-backend/pkg/e"

// GetExtensionFromMIME возвращает расширение файла по MIME-типу макета.
// Поддерживает jpeg, jpg, png, webp и pdf. Возвращает ошибку e.ErrUnsupportedMediaType для неподдерживаемых типов.
func GetExtensionFromMIME(mime string) (string, error) {
	switch mime {
	case "image/jpeg", "image/jpg":
		return "jpg", nil
	case "image/png":
		return "png", nil
	case "image/webp":
		return "webp", nil
	case "application/pdf":
		return "pdf", nil
	default:
		return "bin", e.ErrUnsupportedMediaType
	}
}
