package dataset_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	dataset "github.com/okian/ascent/internal/adapters/dataset"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoader_EmbeddedDefaults(t *testing.T) {
	ctx := context.Background()

	Convey("Given a loader with no external paths", t, func() {
		loader := dataset.NewLoader()

		Convey("When loading the embedded defaults", func() {
			snap, err := loader.Load(ctx)

			Convey("Then the snapshot carries a populated taxonomy", func() {
				So(err, ShouldBeNil)
				So(snap.Taxonomy.Len(), ShouldBeGreaterThan, 30)
			})

			Convey("And the built-in abbreviations resolve", func() {
				s, ok := snap.Taxonomy.Resolve("k8s")
				So(ok, ShouldBeTrue)
				So(s.ID, ShouldEqual, "Kubernetes")

				s, ok = snap.Taxonomy.Resolve("ml")
				So(ok, ShouldBeTrue)
				So(s.ID, ShouldEqual, "Machine Learning")
			})

			Convey("And the posting table is parsed with required skills", func() {
				So(len(snap.Postings), ShouldEqual, 12)
				So(snap.Postings[0].ID, ShouldEqual, "J001")
				So(snap.Postings[0].Required, ShouldContain, "Django")
			})

			Convey("And every role roadmap has ordered levels", func() {
				So(len(snap.Roadmaps), ShouldEqual, 6)
				for _, r := range snap.Roadmaps {
					So(r.Role, ShouldNotBeEmpty)
					So(len(r.Levels), ShouldBeGreaterThanOrEqualTo, 3)
				}
			})

			Convey("And the rubric verb list rides along", func() {
				So(snap.ImpactVerbs, ShouldNotBeEmpty)
			})

			Convey("And there is nothing to watch", func() {
				So(loader.WatchPaths(), ShouldBeEmpty)
			})
		})
	})
}

func TestLoader_ExternalFiles(t *testing.T) {
	ctx := context.Background()

	Convey("Given external dataset files on disk", t, func() {
		dir := t.TempDir()
		skillsPath := filepath.Join(dir, "skills.yaml")
		jobsPath := filepath.Join(dir, "jobs.csv")

		skillsDoc := `skills:
  - id: Python
    category: language
    aliases: [py]
  - id: SQL
    category: language
roadmaps:
  - role: Backend Developer
    levels:
      - name: beginner
        skills:
          - skill: Python
            resource: python.org
impact_verbs: [built, shipped]
`
		jobsDoc := `job_id,title,company,location,experience_level,salary_range,skills_required,description
J100,Backend Developer,Acme,Berlin,Mid,60k-80k,Python|SQL,Own the API layer.
`
		So(os.WriteFile(skillsPath, []byte(skillsDoc), 0o600), ShouldBeNil)
		So(os.WriteFile(jobsPath, []byte(jobsDoc), 0o600), ShouldBeNil)

		loader := dataset.NewLoader(
			dataset.WithSkillsPath(skillsPath),
			dataset.WithJobsPath(jobsPath),
		)

		Convey("When loading from the external files", func() {
			snap, err := loader.Load(ctx)

			Convey("Then the external data replaces the embedded defaults", func() {
				So(err, ShouldBeNil)
				So(snap.Taxonomy.Len(), ShouldEqual, 2)
				So(len(snap.Postings), ShouldEqual, 1)
				So(snap.Postings[0].ID, ShouldEqual, "J100")
				So(len(snap.Roadmaps), ShouldEqual, 1)
				So(snap.ImpactVerbs, ShouldResemble, []string{"built", "shipped"})
			})

			Convey("And both paths are watchable", func() {
				So(loader.WatchPaths(), ShouldResemble, []string{skillsPath, jobsPath})
			})
		})

		Convey("When the skills path does not exist", func() {
			missing := dataset.NewLoader(dataset.WithSkillsPath(filepath.Join(dir, "nope.yaml")))
			_, err := missing.Load(ctx)

			Convey("Then the load fails with ErrLoadSkills", func() {
				So(err, ShouldWrap, dataset.ErrLoadSkills)
			})
		})
	})
}

func TestLoader_MalformedJobs(t *testing.T) {
	ctx := context.Background()

	Convey("Given job tables with integrity problems", t, func() {
		dir := t.TempDir()

		write := func(name, content string) *dataset.Loader {
			path := filepath.Join(dir, name)
			So(os.WriteFile(path, []byte(content), 0o600), ShouldBeNil)
			return dataset.NewLoader(dataset.WithJobsPath(path))
		}

		Convey("When the header is wrong", func() {
			loader := write("badheader.csv", "id,name\n1,x\n")
			_, err := loader.Load(ctx)

			Convey("Then the load fails with ErrBadRecord", func() {
				So(err, ShouldWrap, dataset.ErrLoadJobs)
				So(err, ShouldWrap, dataset.ErrBadRecord)
			})
		})

		Convey("When a row repeats a job id", func() {
			loader := write("dup.csv", `job_id,title,company,location,experience_level,salary_range,skills_required,description
J001,A,Acme,Berlin,Mid,1,Python,first
J001,B,Acme,Berlin,Mid,1,SQL,second
`)
			_, err := loader.Load(ctx)

			Convey("Then the duplicate fails the whole load", func() {
				So(err, ShouldWrap, dataset.ErrBadRecord)
			})
		})

		Convey("When a row carries an unknown experience level", func() {
			loader := write("level.csv", `job_id,title,company,location,experience_level,salary_range,skills_required,description
J001,A,Acme,Berlin,Principal,1,Python,text
`)
			_, err := loader.Load(ctx)

			Convey("Then the load fails with ErrBadRecord", func() {
				So(err, ShouldWrap, dataset.ErrBadRecord)
			})
		})
	})
}
