package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/urfave/cli/v2"

	"catalog-scrape/pkg/catalog"
	"catalog-scrape/pkg/comm"
	"catalog-scrape/pkg/config"
	"catalog-scrape/pkg/courses"
	"catalog-scrape/pkg/db"
	"catalog-scrape/pkg/domain"
	"catalog-scrape/pkg/enrich"
	"catalog-scrape/pkg/httpclient"
	"catalog-scrape/pkg/jsonfile"
	"catalog-scrape/pkg/normalize"
	"catalog-scrape/pkg/pipeline"
	"catalog-scrape/pkg/urls"
)

// newCLIApp creates the CLI application, one subcommand per pipeline
// stage. Each stage is independently re-runnable.
func newCLIApp(cfg *config.Config) *cli.App {
	return &cli.App{
		Name:  "catalog",
		Usage: "Scrape, normalize and load the course catalog",
		Commands: []*cli.Command{
			coursesCmd(cfg),
			programsCmd(cfg),
			normalizeCmd(cfg),
			loadCmd(cfg),
			commCmd(cfg),
			runCmd(cfg),
		},
	}
}

// coursesCmd scrapes the paginated course-list print view into the raw
// course artifact.
func coursesCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "courses",
		Usage: "Fetch and parse the flat course list",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "pages", Value: urls.CourseListPages, Usage: "Print-view pages to fetch"},
			&cli.BoolFlag{Name: "archive", Usage: "Also upsert raw records into the Mongo archive"},
		},
		Action: func(c *cli.Context) error {
			return runCourses(c.Context, cfg, c.Int("pages"), c.Bool("archive"))
		},
	}
}

// runCourses sweeps the course-list pages and writes the raw course
// artifact.
func runCourses(ctx context.Context, cfg *config.Config, pages int, archive bool) error {
	client := httpclient.NewClient()
	var records []domain.Course

	for page := 1; page <= pages; page++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if page > 1 {
			time.Sleep(pipeline.PolitenessDelay)
		}

		pageURL := urls.CourseListPageURL(page)
		log.Printf("[%d/%d] fetching course list page", page, pages)
		text := client.PageText(pageURL)
		if text == "" {
			log.Printf("[%d/%d] no content, skipping", page, pages)
			continue
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
		if err != nil {
			log.Printf("[%d/%d] parse failed: %v", page, pages, err)
			continue
		}

		pageRecords := courses.ParsePage(doc)
		log.Printf("[%d/%d] parsed %d course blocks", page, pages, len(pageRecords))
		records = append(records, pageRecords...)
	}

	if len(records) == 0 {
		return fmt.Errorf("no course blocks found on any page")
	}

	path := filepath.Join(cfg.OutputDir, config.CoursesFile)
	if err := jsonfile.WriteAtomic(path, records); err != nil {
		return err
	}
	fmt.Printf("Wrote %d raw courses to %s\n", len(records), path)

	if archive {
		return archiveCourses(ctx, cfg, records)
	}
	return nil
}

// archiveCourses upserts the raw records into the Mongo archive.
func archiveCourses(ctx context.Context, cfg *config.Config, records []domain.Course) error {
	if cfg.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required for --archive")
	}

	client, err := db.NewArchiveClient(cfg.MongoURI, "catalog", "raw_courses")
	if err != nil {
		return err
	}
	defer client.Close(ctx)

	if err := client.Connect(ctx); err != nil {
		return fmt.Errorf("connect archive: %w", err)
	}
	if err := client.SaveCourses(ctx, records); err != nil {
		return err
	}
	log.Printf("archived %d raw courses", len(records))
	return nil
}

// programsCmd discovers program and department pages from the catalog
// index, parses their requirement blocks and writes both the raw
// program tree and the enriched export.
func programsCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "programs",
		Usage: "Fetch and parse degree-program requirement pages",
		Action: func(c *cli.Context) error {
			return runPrograms(c.Context, cfg)
		},
	}
}

func runPrograms(ctx context.Context, cfg *config.Config) error {
	client := httpclient.NewClient()

	indexText := client.PageText(cfg.IndexURL)
	if indexText == "" {
		return fmt.Errorf("catalog index %s yielded no content", cfg.IndexURL)
	}
	indexDoc, err := goquery.NewDocumentFromReader(strings.NewReader(indexText))
	if err != nil {
		return fmt.Errorf("parse catalog index: %w", err)
	}

	pageURLs := append(urls.ExtractProgramURLs(indexDoc), urls.ExtractDepartmentURLs(indexDoc)...)
	if len(pageURLs) == 0 {
		return fmt.Errorf("catalog index %s lists no program or department pages", cfg.IndexURL)
	}
	log.Printf("discovered %d catalog pages", len(pageURLs))

	cat := catalog.New()
	features := []catalog.Feature{catalog.ProgramRequirementsFeature}
	merged := pipeline.Sweep(ctx, client, pageURLs, features, cat)
	log.Printf("merged %d/%d pages, %d programs", merged, len(pageURLs), len(cat.Programs))

	var rawCourses []domain.Course
	coursesPath := filepath.Join(cfg.OutputDir, config.CoursesFile)
	if err := jsonfile.Read(coursesPath, &rawCourses); err != nil {
		return fmt.Errorf("course list artifact is required for enrichment: %w", err)
	}
	index := make(map[string]domain.Course, len(rawCourses))
	for _, course := range rawCourses {
		index[course.Code] = course
	}

	programsPath := filepath.Join(cfg.OutputDir, config.ProgramsFile)
	if err := jsonfile.WriteAtomic(programsPath, cat.Programs); err != nil {
		return err
	}

	enriched := enrich.Catalog(cat.Programs, index)
	enrichedPath := filepath.Join(cfg.OutputDir, config.EnrichedProgramsFile)
	if err := jsonfile.WriteAtomic(enrichedPath, enriched); err != nil {
		return err
	}

	fmt.Printf("Wrote %d programs to %s and %s\n", len(enriched), programsPath, enrichedPath)
	return nil
}

// normalizeCmd converts the raw course artifact into canonical typed
// records.
func normalizeCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "normalize",
		Usage: "Normalize raw course records into canonical form",
		Action: func(_ *cli.Context) error {
			return runNormalize(cfg)
		},
	}
}

func runNormalize(cfg *config.Config) error {
	var rawCourses []domain.Course
	inPath := filepath.Join(cfg.OutputDir, config.CoursesFile)
	if err := jsonfile.Read(inPath, &rawCourses); err != nil {
		return err
	}

	normalized := make([]domain.NormalizedCourse, 0, len(rawCourses))
	for _, c := range rawCourses {
		normalized = append(normalized, domain.NormalizedCourse{
			CourseID:         c.Code,
			Name:             c.Name,
			Credits:          normalize.ParseCredits(c.Credits),
			SemestersOffered: normalize.ParseSemesters(c.Offered),
			Prerequisites:    normalize.ParseList(c.Prerequisites),
		})
	}

	outPath := filepath.Join(cfg.OutputDir, config.NormalizedFile)
	if err := jsonfile.WriteAtomic(outPath, normalized); err != nil {
		return err
	}
	fmt.Printf("Wrote %d normalized courses to %s\n", len(normalized), outPath)
	return nil
}

// loadCmd loads the normalized courses and program requirement trees
// into the relational store.
func loadCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "load",
		Usage: "Load normalized data into the relational store",
		Action: func(c *cli.Context) error {
			return runLoad(c.Context, cfg)
		},
	}
}

func runLoad(ctx context.Context, cfg *config.Config) error {
	var normalized []domain.NormalizedCourse
	coursesPath := filepath.Join(cfg.OutputDir, config.NormalizedFile)
	if err := jsonfile.Read(coursesPath, &normalized); err != nil {
		return err
	}

	provider, closeFn, err := connectBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	store := db.NewStore(provider)
	if err := store.EnsureSchema(ctx); err != nil {
		return err
	}

	if err := store.UpsertCourses(ctx, normalized); err != nil {
		return err
	}
	fmt.Printf("Upserted %d courses\n", len(normalized))

	// Program requirement rows are rebuilt from the raw program tree;
	// a missing tree means the programs stage hasn't run, which is fine
	// for a course-only load.
	var programs map[string]domain.Program
	programsPath := filepath.Join(cfg.OutputDir, config.ProgramsFile)
	if err := jsonfile.Read(programsPath, &programs); err != nil {
		log.Printf("skipping programs: %v", err)
		return nil
	}

	loaded := 0
	for _, program := range programs {
		if err := store.InsertProgram(ctx, program); err != nil {
			return err
		}
		loaded++
	}
	fmt.Printf("Loaded %d programs\n", loaded)
	return nil
}

// connectBackend picks the storage backend: Supabase when configured,
// plain Postgres otherwise.
func connectBackend(ctx context.Context, cfg *config.Config) (db.DBProvider, func() error, error) {
	if cfg.UseSupabase() {
		client := db.NewSupabaseClient(db.SupabaseConfig{
			SupabaseURL: cfg.SupabaseURL,
			SupabaseKey: cfg.SupabaseKey,
			Password:    cfg.SupabasePassword,
		})
		if err := client.Connect(ctx); err != nil {
			return nil, nil, err
		}
		return client, client.Close, nil
	}

	if cfg.DatabaseURL == "" {
		return nil, nil, fmt.Errorf("DATABASE_URL (or Supabase credentials) required for load")
	}
	client := db.NewPostgresClient(db.PostgresConfig{DSN: cfg.DatabaseURL})
	if err := client.Connect(ctx); err != nil {
		return nil, nil, err
	}
	return client, client.Close, nil
}

// commCmd fetches the current term's communication-intensive course
// list.
func commCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "comm",
		Usage: "Fetch the communication-intensive course list",
		Action: func(_ *cli.Context) error {
			client := httpclient.NewClient()
			codes, err := comm.Fetch(client, time.Now())
			if err != nil {
				return err
			}

			path := filepath.Join(cfg.OutputDir, config.CommCoursesFile)
			if err := jsonfile.WriteAtomic(path, codes); err != nil {
				return err
			}
			fmt.Printf("Wrote %d communication-intensive courses to %s\n", len(codes), path)
			return nil
		},
	}
}

// runCmd chains the scrape stages end to end. Load is deliberately left
// out so a full scrape never touches the database by accident.
func runCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run the courses, normalize and programs stages in order",
		Action: func(c *cli.Context) error {
			stages := []pipeline.Stage{
				{Name: "courses", Run: func(ctx context.Context) error {
					return runCourses(ctx, cfg, urls.CourseListPages, false)
				}},
				{Name: "normalize", Run: func(_ context.Context) error {
					return runNormalize(cfg)
				}},
				{Name: "programs", Run: func(ctx context.Context) error {
					return runPrograms(ctx, cfg)
				}},
			}
			return pipeline.Run(c.Context, stages)
		},
	}
}
