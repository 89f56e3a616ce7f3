package gap_test

import (
	"context"
	"testing"

	gap "github.com/okian/ascent/internal/domain/gap"
	model "github.com/okian/ascent/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func roadmaps() []model.Roadmap {
	return []model.Roadmap{
		{
			Role: "Data Scientist",
			Levels: []model.RoadmapLevel{
				{Name: model.LevelBeginner, Items: []model.RoadmapItem{
					{Skill: "Python", Resource: "python.org/about/gettingstarted"},
					{Skill: "SQL", Resource: "sqlbolt.com"},
					{Skill: "Statistics", Resource: "khanacademy.org/math/statistics-probability"},
				}},
				{Name: model.LevelIntermediate, Items: []model.RoadmapItem{
					{Skill: "Machine Learning", Resource: "coursera.org/learn/machine-learning"},
					{Skill: "Pandas", Resource: "pandas.pydata.org/docs"},
				}},
				{Name: model.LevelAdvanced, Items: []model.RoadmapItem{
					{Skill: "Deep Learning", Resource: "deeplearning.ai"},
				}},
			},
		},
		{
			Role: "Backend Developer",
			Levels: []model.RoadmapLevel{
				{Name: model.LevelBeginner, Items: []model.RoadmapItem{
					{Skill: "Python", Resource: "python.org"},
					{Skill: "Git", Resource: "git-scm.com/book"},
				}},
			},
		},
	}
}

func TestAnalyzer_Analyze(t *testing.T) {
	ctx := context.Background()

	Convey("Given a gap analyzer and the roadmap table", t, func() {
		analyzer := gap.New()

		Convey("When analyzing a profile against Data Scientist", func() {
			report, err := analyzer.Analyze(ctx, []string{"Python", "SQL"}, "data scientist", "", roadmaps())

			Convey("Then the role matches case-insensitively", func() {
				So(err, ShouldBeNil)
				So(report.Role, ShouldEqual, "Data Scientist")
			})

			Convey("And the beginner level partitions into known and missing", func() {
				So(report.Levels[0].Name, ShouldEqual, model.LevelBeginner)
				So(report.Levels[0].Known, ShouldResemble, []string{"Python", "SQL"})
				So(report.Levels[0].Missing, ShouldResemble, []string{"Statistics"})
			})

			Convey("And prioritized missing skills keep curriculum order with resources", func() {
				So(report.PrioritizedMissing[0].Skill, ShouldEqual, "Statistics")
				So(report.PrioritizedMissing[0].Level, ShouldEqual, model.LevelBeginner)
				So(report.PrioritizedMissing[0].Resource, ShouldNotBeEmpty)
				So(report.PrioritizedMissing[1].Skill, ShouldEqual, "Machine Learning")
			})

			Convey("And the ETA sums per-level costs over missing skills", func() {
				// Statistics (1) + Machine Learning (2) + Pandas (2) + Deep Learning (3)
				So(report.ETAWeeks, ShouldEqual, 8)
			})

			Convey("And the completion percentage is rounded to two decimals", func() {
				// 2 of 6 skills known
				So(report.CompletionPercent, ShouldEqual, 33.33)
			})
		})

		Convey("When the experience level narrows the starting point", func() {
			report, err := analyzer.Analyze(ctx, []string{"Machine Learning"}, "Data Scientist", "intermediate", roadmaps())

			Convey("Then beginner skills are assumed achieved and dropped", func() {
				So(err, ShouldBeNil)
				So(len(report.Levels), ShouldEqual, 2)
				So(report.Levels[0].Name, ShouldEqual, model.LevelIntermediate)
			})

			Convey("And completion counts only the scored levels", func() {
				// 1 of 3 remaining skills known
				So(report.CompletionPercent, ShouldEqual, 33.33)
			})
		})

		Convey("When every roadmap skill is already known", func() {
			report, err := analyzer.Analyze(ctx,
				[]string{"Python", "SQL", "Statistics", "Machine Learning", "Pandas", "Deep Learning"},
				"Data Scientist", "", roadmaps())

			Convey("Then nothing is missing and the ETA is zero", func() {
				So(err, ShouldBeNil)
				So(report.PrioritizedMissing, ShouldBeEmpty)
				So(report.ETAWeeks, ShouldEqual, 0)
				So(report.CompletionPercent, ShouldEqual, 100.00)
			})
		})

		Convey("When the target role is unknown", func() {
			_, err := analyzer.Analyze(ctx, []string{"Python"}, "Astronaut", "", roadmaps())

			Convey("Then the call fails with ErrUnknownRole", func() {
				So(err, ShouldWrap, gap.ErrUnknownRole)
			})
		})

		Convey("When the experience level is unknown", func() {
			_, err := analyzer.Analyze(ctx, []string{"Python"}, "Data Scientist", "guru", roadmaps())

			Convey("Then the call fails with ErrInvalidLevel", func() {
				So(err, ShouldWrap, gap.ErrInvalidLevel)
			})
		})

		Convey("When one more known skill is added", func() {
			base, err1 := analyzer.Analyze(ctx, []string{"Python"}, "Data Scientist", "", roadmaps())
			more, err2 := analyzer.Analyze(ctx, []string{"Python", "SQL"}, "Data Scientist", "", roadmaps())

			Convey("Then completion never decreases and the ETA never grows", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(more.CompletionPercent, ShouldBeGreaterThanOrEqualTo, base.CompletionPercent)
				So(more.ETAWeeks, ShouldBeLessThanOrEqualTo, base.ETAWeeks)
			})
		})

		Convey("When custom level costs are configured", func() {
			custom := gap.New(gap.WithLevelCosts(map[string]int{
				model.LevelBeginner:     2,
				model.LevelIntermediate: 4,
				model.LevelAdvanced:     6,
			}))
			report, err := custom.Analyze(ctx, nil, "Backend Developer", "", roadmaps())

			Convey("Then the ETA reflects the override", func() {
				So(err, ShouldBeNil)
				// Python (2) + Git (2)
				So(report.ETAWeeks, ShouldEqual, 4)
			})
		})
	})
}
