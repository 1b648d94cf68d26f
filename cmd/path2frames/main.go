package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ivlev/path2frames/internal/config"
	"github.com/ivlev/path2frames/internal/driver"
	"github.com/ivlev/path2frames/internal/engine"
	"github.com/ivlev/path2frames/internal/scenario"
	"github.com/ivlev/path2frames/internal/system"
)

const buildVersion = "2.1.0"

func main() {
	// Увеличиваем лимиты системы (для macOS/Linux)
	system.InitResourceLimits()

	// Создаем нужные директории, если их нет
	dirs := []string{"input/scenarios", "output"}
	for _, d := range dirs {
		os.MkdirAll(d, 0755)
	}

	inputPtr := flag.String("input", "", "Путь к YAML-сценарию (по умолчанию: самый свежий файл в input/scenarios/)")
	outputPtr := flag.String("output", "", "Путь к таблице координат (если пусто, генерируется автоматически в output/)")
	formatPtr := flag.String("format", "yaml", "Формат таблицы: yaml, json")
	framesPtr := flag.Int("frames", 0, "Число кадров (0 - берётся из сценария)")
	framesDirPtr := flag.String("frames-dir", "", "Каталог для покадровых JSON-файлов (пусто - не выгружать)")
	graphPtr := flag.Bool("graph", false, "Напечатать граф драйверов (mermaid) и выйти")
	statsPtr := flag.Bool("stats", false, "Показать отчёт о производительности")
	workersPtr := flag.Int("workers", 0, "Потоки покадровой выгрузки (0 - по ресурсам машины)")

	flag.Parse()

	inputPath := *inputPtr
	if inputPath == "" {
		latest, err := scenario.FindLatest("input/scenarios")
		if err != nil {
			log.Fatalf("[-] Ошибка: %v. Положите сценарий в input/scenarios/", err)
		}
		inputPath = latest
		fmt.Printf("[*] Выбран сценарий: %s\n", inputPath)
	}

	scn, err := scenario.Read(inputPath)
	if err != nil {
		log.Fatalf("[-] Ошибка чтения сценария: %v", err)
	}

	if *graphPtr {
		if err := scn.Validate(); err != nil {
			log.Fatalf("[-] Ошибка сценария: %v", err)
		}
		fmt.Print(driver.Build(engine.Nodes(scn)).Mermaid())
		return
	}

	format := strings.ToLower(*formatPtr)
	finalOutput := *outputPtr
	if finalOutput == "" {
		baseName := filepath.Base(inputPath)
		nameOnly := strings.TrimSuffix(baseName, filepath.Ext(baseName))
		cleanName := strings.ReplaceAll(nameOnly, " ", "_")
		timestamp := time.Now().Format("2006-01-02_15-04-05")
		finalOutput = filepath.Join("output", fmt.Sprintf("%s_%s.%s", cleanName, timestamp, format))
	}

	cfg := &config.Config{
		InputPath:    inputPath,
		OutputPath:   finalOutput,
		OutputFormat: format,
		FramesDir:    *framesDirPtr,
		TotalFrames:  *framesPtr,
		Workers:      *workersPtr,
		PrintGraph:   *graphPtr,
		ShowStats:    *statsPtr,
		BuildVersion: buildVersion,
	}

	resolver := engine.NewResolver(cfg)
	result, err := resolver.Resolve(scn)
	if err != nil {
		log.Fatalf("[-] Ошибка разрешения сцены: %v", err)
	}

	if err := engine.WriteResult(result, cfg.OutputPath, cfg.OutputFormat); err != nil {
		log.Fatalf("[-] Ошибка записи таблицы: %v", err)
	}

	if cfg.FramesDir != "" {
		workers := cfg.Workers
		if workers < 1 {
			workers = system.RenderWorkers(0)
		}
		fmt.Printf("[*] Покадровая выгрузка в %s (%d потоков)...\n", cfg.FramesDir, workers)
		if err := result.ExportFrames(context.Background(), cfg.FramesDir, workers); err != nil {
			log.Fatalf("[-] Ошибка покадровой выгрузки: %v", err)
		}
	}

	if cfg.ShowStats {
		resolver.ShowStats()
	}

	fmt.Printf("[+++] Успех! Результат: %s\n", cfg.OutputPath)
}
