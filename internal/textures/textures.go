package textures

import (
	"fmt"
	"path/filepath"

	"github.com/annel0/voxel-terrain/internal/world/block"
)

// Channel определяет канал PBR-материала
type Channel uint8

const (
	ChannelColor Channel = iota
	ChannelRoughness
	ChannelNormal
	ChannelAO
)

// AllChannels перечисляет каналы в порядке загрузки
var AllChannels = []Channel{ChannelColor, ChannelRoughness, ChannelNormal, ChannelAO}

// String возвращает имя канала
func (c Channel) String() string {
	switch c {
	case ChannelColor:
		return "color"
	case ChannelRoughness:
		return "roughness"
	case ChannelNormal:
		return "normal"
	case ChannelAO:
		return "ao"
	default:
		return fmt.Sprintf("channel(%d)", int(c))
	}
}

// MarshalText реализует encoding.TextMarshaler, чтобы каналы были ключами JSON
func (c Channel) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// fileSuffix возвращает суффикс файла канала в наборах текстур 1K-JPG
func (c Channel) fileSuffix() string {
	switch c {
	case ChannelColor:
		return "Color"
	case ChannelRoughness:
		return "Roughness"
	case ChannelNormal:
		return "NormalGL"
	case ChannelAO:
		return "AmbientOcclusion"
	default:
		return ""
	}
}

// MaterialTextures хранит пути файлов текстур одного материала по каналам
type MaterialTextures struct {
	Material block.Material
	Paths    map[Channel]string
}

// DefaultSet возвращает наборы текстур всех зарегистрированных материалов
// относительно каталога root.
func DefaultSet(root string) []MaterialTextures {
	behaviors := block.All()
	set := make([]MaterialTextures, 0, len(behaviors))
	for _, b := range behaviors {
		set = append(set, ForMaterial(root, b))
	}
	return set
}

// ForMaterial строит пути каналов из базового имени набора материала
func ForMaterial(root string, b block.MaterialBehavior) MaterialTextures {
	paths := make(map[Channel]string, len(AllChannels))
	for _, ch := range AllChannels {
		paths[ch] = filepath.Join(root, fmt.Sprintf("%s_%s.jpg", b.TextureBase(), ch.fileSuffix()))
	}
	return MaterialTextures{Material: b.ID(), Paths: paths}
}
