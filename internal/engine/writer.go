package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/path2frames/internal/path"
	"github.com/ivlev/path2frames/internal/system"
)

// WriteResult stores the resolved table as a YAML or JSON file
func WriteResult(res *Result, outPath, format string) error {
	var data []byte
	var err error
	switch format {
	case "json":
		data, err = json.MarshalIndent(res, "", "  ")
	case "", "yaml":
		data, err = yaml.Marshal(res)
	default:
		return fmt.Errorf("unknown output format: %q", format)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, data, 0644)
}

// FrameRecord is one layer's position on one output frame, the shape the
// rasterizer consumes.
type FrameRecord struct {
	Name  string     `json:"name"`
	Point path.Point `json:"point"`
}

type frameFile struct {
	Frame  int           `json:"frame"`
	Layers []FrameRecord `json:"layers"`
}

// Frame snapshots every layer's position at the given output frame.
func (res *Result) Frame(i int) []FrameRecord {
	records := make([]FrameRecord, 0, len(res.Layers))
	for _, layer := range res.Layers {
		if i < 0 || i >= len(layer.Frames) {
			continue
		}
		records = append(records, FrameRecord{Name: layer.Name, Point: layer.Frames[i]})
	}
	return records
}

// ExportFrames записывает по одному JSON-файлу на кадр через пул воркеров.
// Результат к этому моменту уже полностью заполнен, поэтому кадры можно
// выгружать в любом порядке.
func (res *Result) ExportFrames(ctx context.Context, dir string, workers int) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("не удалось создать каталог кадров: %w", err)
	}
	return res.ForEachFrame(ctx, workers, func(frame int) error {
		buf := system.GetBuffer()
		defer system.PutBuffer(buf)

		enc := json.NewEncoder(buf)
		if err := enc.Encode(frameFile{Frame: frame, Layers: res.Frame(frame)}); err != nil {
			return err
		}
		name := filepath.Join(dir, fmt.Sprintf("frame_%06d.json", frame))
		return os.WriteFile(name, buf.Bytes(), 0644)
	})
}
