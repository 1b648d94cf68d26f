package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/ivlev/path2frames/internal/config"
	"github.com/ivlev/path2frames/internal/driver"
	"github.com/ivlev/path2frames/internal/path"
	"github.com/ivlev/path2frames/internal/resample"
	"github.com/ivlev/path2frames/internal/scenario"
	"github.com/ivlev/path2frames/internal/spline"
	"github.com/ivlev/path2frames/internal/timing"
)

type Resolver struct {
	Config *config.Config
	Stats  Stats
}

type Stats struct {
	Layers      int
	Dropped     int
	TotalFrames int
	GraphTime   time.Duration
	LayersTime  time.Duration
	TotalTime   time.Duration
}

func NewResolver(cfg *config.Config) *Resolver {
	return &Resolver{Config: cfg}
}

// Result is the resolved per-frame coordinate table, fully populated before
// anything downstream reads it.
type Result struct {
	TotalFrames int             `yaml:"total_frames" json:"total_frames"`
	Layers      []ResolvedLayer `yaml:"layers" json:"layers"`
}

type ResolvedLayer struct {
	Name   string       `yaml:"name" json:"name"`
	Frames []path.Point `yaml:"frames" json:"frames"`
}

// Nodes собирает узлы графа драйверов из слоёв сценария
func Nodes(scn *scenario.Scenario) []driver.Node {
	nodes := make([]driver.Node, 0, len(scn.Layers))
	for i := range scn.Layers {
		layer := &scn.Layers[i]
		node := driver.Node{Name: layer.Name}
		if layer.Driver != nil {
			node.Target = layer.Driver.Target
			node.DeltaScale = layer.Driver.DeltaScale
		}
		nodes = append(nodes, node)
	}
	return nodes
}

// Resolve превращает сценарий в таблицу мировых координат по кадрам.
// Сценарий валидируется и нормализуется на месте; слои обрабатываются в
// топологическом порядке, чтобы цепочки драйверов накапливались корректно.
func (r *Resolver) Resolve(scn *scenario.Scenario) (*Result, error) {
	startTime := time.Now()

	if r.Config != nil && r.Config.TotalFrames > 0 {
		scn.TotalFrames = r.Config.TotalFrames
	}
	if err := scn.Validate(); err != nil {
		return nil, err
	}
	total := scn.TotalFrames

	// Граф драйверов: построение, циклы, топологический порядок
	graphStart := time.Now()
	byName := make(map[string]*scenario.Layer, len(scn.Layers))
	for i := range scn.Layers {
		byName[scn.Layers[i].Name] = &scn.Layers[i]
	}
	graph := driver.Build(Nodes(scn))
	if err := graph.DetectCycle(); err != nil {
		return nil, err
	}
	order, err := graph.TopoOrder()
	if err != nil {
		return nil, err
	}
	graphTime := time.Since(graphStart)

	fmt.Println("--- [SCENE: DRIVER RESOLVER] ---")
	fmt.Printf("[*] Слоёв: %d | Кадров: %d\n", len(scn.Layers), total)
	fmt.Println("--------------------------------")

	layersStart := time.Now()
	resolved := make(map[string][]path.Point, len(order))
	dropped := 0
	for k, name := range order {
		frames, err := r.resolveLayer(byName[name], total, graph, byName, resolved)
		if err != nil {
			// Слой с негодными точками выбрасывается целиком, остальная
			// сцена продолжает разрешаться
			log.Printf("[!] Слой %q не разрешён: %v", name, err)
			dropped++
			continue
		}
		resolved[name] = frames
		fmt.Printf("[>] Resolved %d/%d: %s\n", k+1, len(order), name)
	}
	layersTime := time.Since(layersStart)

	// Выходная таблица следует порядку объявления слоёв в сценарии
	result := &Result{TotalFrames: total}
	for i := range scn.Layers {
		if frames, ok := resolved[scn.Layers[i].Name]; ok {
			result.Layers = append(result.Layers, ResolvedLayer{
				Name:   scn.Layers[i].Name,
				Frames: frames,
			})
		}
	}

	r.Stats = Stats{
		Layers:      len(result.Layers),
		Dropped:     dropped,
		TotalFrames: total,
		GraphTime:   graphTime,
		LayersTime:  layersTime,
		TotalTime:   time.Since(startTime),
	}
	return result, nil
}

// resolveLayer прогоняет один слой по конвейеру:
// денсификация -> ресемплинг -> ускорение -> offset -> паузы -> драйвер.
func (r *Resolver) resolveLayer(
	layer *scenario.Layer,
	total int,
	graph *driver.Graph,
	byName map[string]*scenario.Layer,
	resolved map[string][]path.Point,
) ([]path.Point, error) {
	dense := spline.Densify(layer.Points, layer.Mode, layer.Subdivision)

	startPause, endPause := layer.Timing.StartPause, layer.Timing.EndPause
	animated := timing.AnimatedFrames(total, startPause, endPause)

	frames, err := resample.Resample(dense, animated, layer.Curve)
	if err != nil {
		return nil, err
	}
	frames = resample.Accelerate(frames, layer.Timing.Acceleration)
	frames, startPause, endPause = timing.ApplyOffset(frames, layer.Timing.Offset, startPause, endPause)
	frames = timing.Expand(frames, total, startPause, endPause)

	if target, scale := graph.Relation(layer.Name); target != "" {
		source := r.driverSource(layer, target, total, byName, resolved)
		if len(source) == 0 {
			log.Printf("[!] Слой %q: драйвер %q не разрешён, смещение нулевое", layer.Name, target)
		}
		frames = driver.ApplyOffset(frames, source, scale)
	}
	return frames, nil
}

// driverSource выбирает траекторию, из которой берётся дельта движения.
// Без rotate/smooth это уже разрешённые кадры драйвера (цепочки суммируются);
// с ними — сырой путь драйвера, повёрнутый вокруг своей первой точки и/или
// сглаженный, заново денсифицированный и ресемплированный на total кадров.
// Ускорение и паузы драйвера в источник дельты не входят.
func (r *Resolver) driverSource(
	layer *scenario.Layer,
	target string,
	total int,
	byName map[string]*scenario.Layer,
	resolved map[string][]path.Point,
) []path.Point {
	spec := layer.Driver
	if spec == nil || (spec.RotateDegrees == 0 && spec.Smooth == 0) {
		return resolved[target]
	}

	tl, ok := byName[target]
	if !ok {
		return resolved[target]
	}
	raw := tl.Points
	if spec.RotateDegrees != 0 {
		raw = path.Rotate(raw, spec.RotateDegrees, raw[0])
	}
	if spec.Smooth > 0 {
		raw = path.Smooth(raw, spec.Smooth)
	}
	dense := spline.Densify(raw, tl.Mode, tl.Subdivision)
	source, err := resample.Resample(dense, total, tl.Curve)
	if err != nil {
		log.Printf("[!] Слой %q: не удалось ресемплировать путь драйвера %q: %v", layer.Name, target, err)
		return resolved[target]
	}
	return source
}
