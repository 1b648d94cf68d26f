package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ShowStats печатает отчёт о разрешении сцены и дописывает строку в
// benchmark.log для сравнения прогонов.
func (r *Resolver) ShowStats() {
	s := r.Stats
	fps := 0.0
	if s.TotalTime > 0 {
		fps = float64(s.TotalFrames) / s.TotalTime.Seconds()
	}

	version := ""
	input := ""
	if r.Config != nil {
		version = r.Config.BuildVersion
		input = filepath.Base(r.Config.InputPath)
	}

	report := fmt.Sprintf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Build: %s\n"+
			"Layers: %d (dropped: %d)\n"+
			"Frames: %d\n"+
			"Total Time: %.4fs\n"+
			"Driver Graph: %.4fs\n"+
			"Layer Resolution: %.4fs\n"+
			"Frames/s: %.0f\n"+
			"----------------------------\n",
		version, s.Layers, s.Dropped, s.TotalFrames,
		s.TotalTime.Seconds(), s.GraphTime.Seconds(), s.LayersTime.Seconds(), fps,
	)
	fmt.Print(report)

	logEntry := fmt.Sprintf("[%s] Build: %s | Input: %s | Layers: %d | Frames: %d | Total: %.4fs | Graph: %.4fs | Resolve: %.4fs\n",
		time.Now().Format("2006-01-02 15:04:05"),
		version,
		input,
		s.Layers,
		s.TotalFrames,
		s.TotalTime.Seconds(),
		s.GraphTime.Seconds(),
		s.LayersTime.Seconds(),
	)

	f, err := os.OpenFile("benchmark.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		f.WriteString(logEntry)
		f.Close()
	} else {
		fmt.Printf("[!] Не удалось записать benchmark.log: %v\n", err)
	}
}
