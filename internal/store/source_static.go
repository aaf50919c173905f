// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-toml-selector/models"
)

// StaticVersion is the constant version of an in-process table.
const StaticVersion = "static"

// StaticSource serves an in-process table. Its content never changes.
type StaticSource struct {
	name   string
	source models.Source
}

// NewStaticSource wraps src.
func NewStaticSource(name string, src models.Source) *StaticSource {
	return &StaticSource{name: name, source: src}
}

// Name implements [SourceLoader].
func (s *StaticSource) Name() string { return s.name }

// Load implements [SourceLoader]. Every call returns the same snapshot.
func (s *StaticSource) Load(ctx context.Context) (models.Source, error) {
	if err := ctx.Err(); err != nil {
		return models.Source{}, err
	}
	return s.source, nil
}

// Version implements [SourceLoader]. The table always exists.
func (s *StaticSource) Version(context.Context) (string, bool) {
	return StaticVersion, true
}

// DefaultProfiles is the bundled profile table: prompt prefix, quality tags,
// output directory, a spare string and the output directory toggle.
func DefaultProfiles() models.Source {
	profile := func(style, quality, dir string, toggle int64) models.Record {
		return models.NewRecord(
			models.Field{Key: "output_1", Value: models.StringValue(style)},
			models.Field{Key: "output_2", Value: models.StringValue(quality)},
			models.Field{Key: "output_3", Value: models.StringValue(dir)},
			models.Field{Key: "output_4", Value: models.StringValue("")},
			models.Field{Key: "output_5", Value: models.IntValue(toggle)},
		)
	}

	return models.NewSource(
		models.Section{
			Name: "Lovehent",
			Record: profile(
				"masterwork,(artist:Shexyo),anime_screenshot, anime_coloring,",
				"masterpiece,anime_screenshot, anime_coloring,mdf_an,best quality, good quality, newest, very awa, absurdres, highres",
				"/workspace/Randomico/Lovehent/",
				0,
			),
		},
		models.Section{
			Name: "VioletJoi",
			Record: profile(
				"masterwork,(3dcgi,3d),",
				"masterpiece, best quality, good quality, newest, very awa, absurdres, highres, hyper-detailed, excellent, latest",
				"/workspace/Randomico/VioletJoi/",
				1,
			),
		},
		models.Section{
			Name: "VixMavis",
			Record: profile(
				"masterwork,(artist:Shexyo),curvy",
				"masterpiece, best quality, good quality, newest, very awa, absurdres, highres, hyper-detailed, excellent, latest,curvy_figure",
				"/workspace/Randomico/vixmavis/",
				0,
			),
		},
	)
}
