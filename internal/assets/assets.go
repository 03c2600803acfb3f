package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrNotFound is returned when an asset file or folder does not exist.
var ErrNotFound = errors.New("asset not found")

var manager *Manager

type Manager struct {
	models   map[string]rl.Model
	textures map[string]rl.Texture2D
}

// Texture name fragments in order of preference when a folder holds several maps.
var texturePriorities = []string{"basecolor", "base_color", "albedo", "diffuse", "color"}

var textureExts = []string{".png", ".jpg", ".jpeg"}

func Init() {
	manager = &Manager{
		models:   make(map[string]rl.Model),
		textures: make(map[string]rl.Texture2D),
	}
}

// Exists reports ErrNotFound for a missing path.
func Exists(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	return nil
}

// LoadModel loads and caches a model. Missing files and files raylib could
// not parse come back as errors so the caller can leave the model out.
func LoadModel(path string) (rl.Model, error) {
	if manager == nil {
		Init()
	}

	if model, exists := manager.models[path]; exists {
		return model, nil
	}

	if err := Exists(path); err != nil {
		return rl.Model{}, err
	}

	model := rl.LoadModel(path)
	if model.MeshCount == 0 {
		rl.UnloadModel(model)
		return rl.Model{}, fmt.Errorf("load model %s: no meshes", path)
	}

	manager.models[path] = model
	return model, nil
}

func LoadTexture(path string) (rl.Texture2D, error) {
	if manager == nil {
		Init()
	}

	if texture, exists := manager.textures[path]; exists {
		return texture, nil
	}

	if err := Exists(path); err != nil {
		return rl.Texture2D{}, err
	}

	texture := rl.LoadTexture(path)
	if texture.ID == 0 {
		return rl.Texture2D{}, fmt.Errorf("load texture %s: upload failed", path)
	}

	manager.textures[path] = texture
	return texture, nil
}

// FindTextures lists image files under dir, recursively, in lexical order.
func FindTextures(dir string) ([]string, error) {
	if err := Exists(dir); err != nil {
		return nil, err
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if slices.Contains(textureExts, strings.ToLower(filepath.Ext(path))) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan textures in %s: %w", dir, err)
	}
	return files, nil
}

// BestTextureMatch picks the file most likely to be the diffuse map, falling
// back to the first file. Returns "" for an empty list.
func BestTextureMatch(files []string) string {
	for _, p := range texturePriorities {
		for _, f := range files {
			if strings.Contains(strings.ToLower(filepath.Base(f)), p) {
				return f
			}
		}
	}
	if len(files) > 0 {
		return files[0]
	}
	return ""
}

// LoadTexturesFromFolder binds the best diffuse candidate in dir to every
// material of model and returns how many materials were textured.
func LoadTexturesFromFolder(model *rl.Model, dir string) (int, error) {
	files, err := FindTextures(dir)
	if err != nil {
		return 0, err
	}

	best := BestTextureMatch(files)
	if best == "" {
		return 0, nil
	}

	tex, err := LoadTexture(best)
	if err != nil {
		return 0, err
	}

	materials := unsafe.Slice(model.Materials, model.MaterialCount)
	for i := range materials {
		rl.SetMaterialTexture(&materials[i], rl.MapDiffuse, tex)
	}
	return len(materials), nil
}

// SetShader points every material of model at shader.
func SetShader(model *rl.Model, shader rl.Shader) {
	materials := unsafe.Slice(model.Materials, model.MaterialCount)
	for i := range materials {
		materials[i].Shader = shader
	}
}

func Unload() {
	if manager == nil {
		return
	}

	for _, model := range manager.models {
		rl.UnloadModel(model)
	}

	for _, texture := range manager.textures {
		rl.UnloadTexture(texture)
	}

	manager.models = make(map[string]rl.Model)
	manager.textures = make(map[string]rl.Texture2D)
}
