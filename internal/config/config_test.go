package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	config "github.com/okian/ascent/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoadDefaults(t *testing.T) {
	ctx := context.Background()

	Convey("Given no configuration sources", t, func() {
		Convey("When loading", func() {
			cfg, err := config.Load(ctx)

			Convey("Then the defaults apply", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":9080")
				So(cfg.LogLevel, ShouldEqual, "info")
				So(cfg.DefaultTopN, ShouldEqual, 5)
				So(cfg.MaxTopN, ShouldEqual, 25)
				So(cfg.SkillsPath, ShouldBeEmpty)
				So(cfg.GapLevelWeeks["advanced"], ShouldEqual, 3)
				So(cfg.ResumeMinWords, ShouldEqual, 200)
				So(cfg.ResumeMaxWords, ShouldEqual, 1200)
			})
		})
	})
}

func TestLoadEnv(t *testing.T) {
	ctx := context.Background()
	t.Setenv("ASCENT_ADDR", ":7070")
	t.Setenv("ASCENT_DEFAULT_TOP_N", "3")
	t.Setenv("ASCENT_LOG_LEVEL", "debug")

	Convey("Given environment overrides", t, func() {
		Convey("When loading", func() {
			cfg, err := config.Load(ctx)

			Convey("Then env values win over defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":7070")
				So(cfg.DefaultTopN, ShouldEqual, 3)
				So(cfg.LogLevel, ShouldEqual, "debug")
			})

			Convey("And untouched fields keep their defaults", func() {
				So(cfg.MaxTopN, ShouldEqual, 25)
			})
		})
	})
}

func TestLoadFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("addr: \":6060\"\nmax_top_n: 50\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("ASCENT_CONFIG", path)

	Convey("Given a configuration file", t, func() {
		Convey("When loading", func() {
			cfg, err := config.Load(ctx)

			Convey("Then file values override defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":6060")
				So(cfg.MaxTopN, ShouldEqual, 50)
			})
		})
	})
}

func TestLoadFileEnvPrecedence(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("addr: \":6060\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("ASCENT_CONFIG", path)
	t.Setenv("ASCENT_ADDR", ":5050")

	Convey("Given both a file and an env override for one key", t, func() {
		Convey("When loading", func() {
			cfg, err := config.Load(ctx)

			Convey("Then env wins over the file", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":5050")
			})
		})
	})
}

func TestLoadInvalidTopN(t *testing.T) {
	ctx := context.Background()
	t.Setenv("ASCENT_DEFAULT_TOP_N", "0")

	Convey("Given a non-positive default_top_n", t, func() {
		Convey("When loading", func() {
			_, err := config.Load(ctx)

			Convey("Then loading fails with ErrInvalidConfig", func() {
				So(err, ShouldWrap, config.ErrInvalidConfig)
			})
		})
	})
}

func TestLoadInvalidTopNCap(t *testing.T) {
	ctx := context.Background()
	t.Setenv("ASCENT_MAX_TOP_N", "2")

	Convey("Given a max_top_n below default_top_n", t, func() {
		Convey("When loading", func() {
			_, err := config.Load(ctx)

			Convey("Then loading fails with ErrInvalidConfig", func() {
				So(err, ShouldWrap, config.ErrInvalidConfig)
			})
		})
	})
}

func TestLoadMissingFile(t *testing.T) {
	ctx := context.Background()
	t.Setenv("ASCENT_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	Convey("Given a config path that does not exist", t, func() {
		Convey("When loading", func() {
			_, err := config.Load(ctx)

			Convey("Then loading fails with ErrLoadConfig", func() {
				So(err, ShouldWrap, config.ErrLoadConfig)
			})
		})
	})
}
