package rubric_test

import (
	"context"
	"strings"
	"testing"

	model "github.com/okian/ascent/internal/domain/model"
	rubric "github.com/okian/ascent/internal/domain/rubric"
	taxonomy "github.com/okian/ascent/internal/domain/taxonomy"
	. "github.com/smartystreets/goconvey/convey"
)

func rubricTaxonomy() *taxonomy.Taxonomy {
	tax, err := taxonomy.New([]taxonomy.Skill{
		{ID: "Python", Category: taxonomy.CategoryLanguage},
		{ID: "SQL", Category: taxonomy.CategoryDatabase},
		{ID: "Django", Category: taxonomy.CategoryFramework},
		{ID: "Docker", Category: taxonomy.CategoryTool},
		{ID: "Git", Category: taxonomy.CategoryTool},
		{ID: "Statistics", Category: taxonomy.CategoryConcept},
	})
	if err != nil {
		panic(err)
	}
	return tax
}

func rubricRoadmaps() []model.Roadmap {
	return []model.Roadmap{{
		Role: "Data Scientist",
		Levels: []model.RoadmapLevel{
			{Name: model.LevelBeginner, Items: []model.RoadmapItem{
				{Skill: "Python"}, {Skill: "SQL"}, {Skill: "Statistics"},
			}},
		},
	}}
}

// strongResume builds a resume that satisfies every dimension: contact block,
// all four sections, verb-led quantified bullets and enough words.
func strongResume() string {
	filler := strings.Repeat("Worked across the stack with product and design teams on customer facing systems. ", 20)
	return `Jane Doe
jane.doe@example.com | +1 415 555 0199 | linkedin.com/in/janedoe

Experience
- Developed a Django API serving 10,000+ daily users
- Reduced query latency by 40% through SQL tuning
- Led a team of 5 engineers migrating to Docker
- Built CI pipelines with Git, cutting release time by 30%
- Improved onboarding, saving 12 hours per new hire

Education
BSc Computer Science, Example University

Skills
Python, SQL, Django, Docker, Git, Statistics

Projects
- Created an open source statistics toolkit with 200+ stars
` + filler
}

func TestScorer_Score(t *testing.T) {
	ctx := context.Background()

	Convey("Given a rubric scorer with defaults", t, func() {
		scorer := rubric.New()
		tax := rubricTaxonomy()
		maps := rubricRoadmaps()

		Convey("When scoring a strong resume", func() {
			result, err := scorer.Score(ctx, strongResume(), "", tax, maps)

			Convey("Then every dimension is scored within bounds", func() {
				So(err, ShouldBeNil)
				So(len(result.DimensionScores), ShouldEqual, 6)
				for _, score := range result.DimensionScores {
					So(score, ShouldBeBetweenOrEqual, 0, 10)
				}
			})

			Convey("And the overall score and grade land in the top band", func() {
				So(result.Overall, ShouldBeBetweenOrEqual, 85, 100)
				So(result.Grade, ShouldEqual, "A")
			})

			Convey("And no coaching tips are emitted", func() {
				So(result.Tips, ShouldBeEmpty)
			})
		})

		Convey("When scoring a resume with no contact information", func() {
			text := strings.Replace(strongResume(), "jane.doe@example.com | +1 415 555 0199 | linkedin.com/in/janedoe", "", 1)
			result, err := scorer.Score(ctx, text, "", tax, maps)

			Convey("Then the contact dimension scores zero", func() {
				So(err, ShouldBeNil)
				So(result.DimensionScores[rubric.DimContactInfo], ShouldEqual, 0)
			})

			Convey("And a contact tip names what is missing", func() {
				var found bool
				for _, tip := range result.Tips {
					if tip.Dimension == rubric.DimContactInfo {
						found = true
						So(tip.Text, ShouldContainSubstring, "email")
					}
				}
				So(found, ShouldBeTrue)
			})
		})

		Convey("When scoring a short unstructured resume", func() {
			result, err := scorer.Score(ctx, "I am looking for a job in software.", "", tax, maps)

			Convey("Then the weak dimensions each get a tip", func() {
				So(err, ShouldBeNil)
				So(result.Grade, ShouldEqual, "D")
				So(len(result.Tips), ShouldBeGreaterThanOrEqualTo, 4)
			})
		})

		Convey("When the resume text is blank", func() {
			_, err := scorer.Score(ctx, "   \n\t  ", "", tax, maps)

			Convey("Then the call fails with ErrEmptyResume", func() {
				So(err, ShouldWrap, rubric.ErrEmptyResume)
			})
		})

		Convey("When a target role matches a roadmap", func() {
			text := strings.Repeat("plain words without any keywords here. ", 40)
			result, err := scorer.Score(ctx, text, "Data Scientist", tax, maps)

			Convey("Then the keyword tip carries role wording", func() {
				So(err, ShouldBeNil)
				So(result.DimensionScores[rubric.DimATSKeywords], ShouldEqual, 0)
				var keywordTip string
				for _, tip := range result.Tips {
					if tip.Dimension == rubric.DimATSKeywords {
						keywordTip = tip.Text
					}
				}
				So(keywordTip, ShouldContainSubstring, "Pandas")
			})
		})

		Convey("When scoring the same text twice", func() {
			first, err1 := scorer.Score(ctx, strongResume(), "Data Scientist", tax, maps)
			second, err2 := scorer.Score(ctx, strongResume(), "Data Scientist", tax, maps)

			Convey("Then the result is deterministic", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(second, ShouldResemble, first)
			})
		})
	})

	Convey("Given a scorer with a custom length band", t, func() {
		scorer := rubric.New(rubric.WithLengthBand(5, 10))

		Convey("When the text fits the band", func() {
			result, err := scorer.Score(ctx, "one two three four five six seven", "", rubricTaxonomy(), nil)

			Convey("Then the length dimension scores full marks", func() {
				So(err, ShouldBeNil)
				So(result.DimensionScores[rubric.DimLength], ShouldEqual, 10)
			})
		})
	})
}

func TestGradeBands(t *testing.T) {
	Convey("Given resumes of varying quality", t, func() {
		scorer := rubric.New()
		ctx := context.Background()

		Convey("When any resume is scored", func() {
			texts := []string{
				"short",
				strongResume(),
				strings.Repeat("developed measurable systems 40% faster for 1000 users. ", 60),
			}

			Convey("Then the grade is always one of the four bands", func() {
				for _, text := range texts {
					result, err := scorer.Score(ctx, text, "", rubricTaxonomy(), nil)
					So(err, ShouldBeNil)
					So(result.Grade, ShouldBeIn, "A", "B", "C", "D")
					So(result.Overall, ShouldBeBetweenOrEqual, 0, 100)
				}
			})
		})
	})
}
