package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchCodeDefaults(t *testing.T) {
	var fromYAML Config
	if err := yaml.Unmarshal(defaultCourierYAML, &fromYAML); err != nil {
		t.Fatalf("Embedded defaults failed to parse: %v", err)
	}
	fromCode := Default()

	if fromYAML.World != fromCode.World {
		t.Errorf("World defaults diverge: %+v vs %+v", fromYAML.World, fromCode.World)
	}
	if fromYAML.Inventory != fromCode.Inventory {
		t.Errorf("Inventory defaults diverge: %+v vs %+v", fromYAML.Inventory, fromCode.Inventory)
	}
	if fromYAML.Scoring != fromCode.Scoring {
		t.Errorf("Scoring defaults diverge: %+v vs %+v", fromYAML.Scoring, fromCode.Scoring)
	}
	if fromYAML.Difficulty != fromCode.Difficulty {
		t.Errorf("Difficulty defaults diverge: %+v vs %+v", fromYAML.Difficulty, fromCode.Difficulty)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	doc := `
world:
  spawn_trigger_distance: 99
inventory:
  capacity: 12
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.World.SpawnTriggerDistance != 99 {
		t.Errorf("Expected spawn trigger 99, got %v", cfg.World.SpawnTriggerDistance)
	}
	if cfg.Inventory.Capacity != 12 {
		t.Errorf("Expected capacity 12, got %d", cfg.Inventory.Capacity)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}
}

func TestApplyPresetHard(t *testing.T) {
	cfg := Default()
	ApplyPreset(&cfg, DifficultyHard)

	if !cfg.Difficulty.Enabled {
		t.Error("Hard preset should keep progression enabled")
	}
	if cfg.Difficulty.StartOffset != 240 {
		t.Errorf("Expected start offset 240, got %v", cfg.Difficulty.StartOffset)
	}
}

func TestApplyPresetFixedDisablesProgression(t *testing.T) {
	cfg := Default()
	ApplyPreset(&cfg, DifficultyFixed)

	if cfg.Difficulty.Enabled {
		t.Error("Fixed preset should disable progression")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("impossible") != "" {
		t.Error("Unknown preset should parse to empty")
	}
}

func TestStartOffsetOrdering(t *testing.T) {
	easy := StartOffsetForPreset(DifficultyEasy)
	normal := StartOffsetForPreset(DifficultyNormal)
	hard := StartOffsetForPreset(DifficultyHard)
	if !(easy < normal && normal < hard) {
		t.Errorf("Start offsets out of order: easy=%v normal=%v hard=%v", easy, normal, hard)
	}
}
