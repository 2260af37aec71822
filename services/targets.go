package services

import (
	"cmp"
	"path/filepath"
	"slices"
	"strings"

	"launcher-icon-generator/config"
	"launcher-icon-generator/models"

	"github.com/samber/lo"
)

// Targets expands the size table into <res_dir>/<folder>/<icon_name>
// outputs, smallest first.
func Targets(c config.Config) []models.IconTarget {
	targets := lo.MapToSlice(c.Sizes, func(folder string, size int) models.IconTarget {
		return models.IconTarget{
			Folder: folder,
			Size:   size,
			Path:   filepath.Join(c.ResDir, folder, c.IconName),
		}
	})
	slices.SortFunc(targets, func(a, b models.IconTarget) int {
		return cmp.Or(cmp.Compare(a.Size, b.Size), strings.Compare(a.Folder, b.Folder))
	})
	return targets
}

func StoreTarget(c config.Config) models.IconTarget {
	return models.IconTarget{
		Size: c.Store.Size,
		Path: c.Store.Path,
	}
}
