package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/annel0/voxel-terrain/internal/world"
	"github.com/klauspost/compress/zstd"
)

// DocumentVersion задаёт версию формата выгрузки для рендерера
const DocumentVersion = 1

// Format определяет формат выгрузки
type Format int

const (
	FormatJSON Format = iota
	FormatJSONZstd
)

// Document содержит выгрузку сцены для внешнего рендерера. Документ только
// пишется: обратного чтения мира из него нет.
type Document struct {
	Version     int          `json:"version"`
	WorldID     string       `json:"world_id"`
	Width       int          `json:"width"`
	Depth       int          `json:"depth"`
	Seed        int64        `json:"seed"`
	Variant     string       `json:"variant"`
	GeneratedAt time.Time    `json:"generated_at"`
	Descriptors []Descriptor `json:"descriptors"`
}

// NewDocument собирает документ из мира и его описателей
func NewDocument(w *world.World, descs []Descriptor) Document {
	return Document{
		Version:     DocumentVersion,
		WorldID:     w.ID.String(),
		Width:       w.Params.Width,
		Depth:       w.Params.Depth,
		Seed:        w.Params.Seed,
		Variant:     w.Params.Variant.String(),
		GeneratedAt: w.GeneratedAt,
		Descriptors: descs,
	}
}

// Export записывает документ в w в выбранном формате
func Export(w io.Writer, doc Document, format Format) error {
	switch format {
	case FormatJSON:
		return encode(w, doc)
	case FormatJSONZstd:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return fmt.Errorf("ошибка создания zstd-энкодера: %w", err)
		}
		if err := encode(enc, doc); err != nil {
			enc.Close()
			return err
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("ошибка завершения zstd-потока: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("неизвестный формат выгрузки: %d", format)
	}
}

func encode(w io.Writer, doc Document) error {
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("ошибка сериализации сцены: %w", err)
	}
	return nil
}
