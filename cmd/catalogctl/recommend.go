package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"skincare-recommender/internal/bootstrap"
	"skincare-recommender/internal/catalog"
	"skincare-recommender/internal/matches"
	"skincare-recommender/internal/profile"
)

type recommendFlags struct {
	catalogPath string
	gender      string
	age         string
	skinType    string
	problems    []string
	budget      string
	limit       int
	asJSON      bool
}

func newRecommendCmd() *cobra.Command {
	var f recommendFlags
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank catalog services for a profile",
		Long: `Ranks the catalog for one profile using the configured policy.

Examples:
  catalogctl recommend --catalog services.csv --gender female --age 25 \
    --skin-type oily --problem acne --budget 2000
  catalogctl recommend --age 40 --problem wrinkles --problem pigmentation --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRecommend(cmd, f)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&f.catalogPath, "catalog", "", "catalog file (default: the configured catalog source)")
	flags.StringVar(&f.gender, "gender", "", "male, female or any")
	flags.StringVar(&f.age, "age", "", "age in years")
	flags.StringVar(&f.skinType, "skin-type", "", "skin type")
	flags.StringArrayVar(&f.problems, "problem", nil, "skin problem (repeatable or comma separated)")
	flags.StringVar(&f.budget, "budget", "", "maximum price; blank for no limit")
	flags.IntVar(&f.limit, "limit", 0, "maximum results (0 = all)")
	flags.BoolVar(&f.asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func runRecommend(cmd *cobra.Command, f recommendFlags) error {
	ctx := cmdContext(cmd.Context())
	cfg := loadConfig()

	var (
		cat *catalog.Catalog
		err error
	)
	if f.catalogPath != "" {
		cat, err = readCatalogFile(f.catalogPath)
	} else {
		var app *bootstrap.App
		app, err = bootstrap.BuildContext(ctx, cfg)
		if app != nil {
			cat = app.Catalog
		}
	}
	if err != nil {
		return err
	}

	in := profile.Input{
		Gender:   optional(f.gender),
		Age:      optional(f.age),
		SkinType: optional(f.skinType),
		Budget:   optional(f.budget),
	}
	if len(f.problems) > 0 {
		in.SkinProblems = f.problems
	}

	svc := &matches.Service{
		Catalog: cat,
		Policy:  bootstrap.PolicyFromConfig(cfg.Policy),
		Limit:   cfg.RecommendLimit,
	}
	res, err := svc.Recommend(ctx, profile.New(in), f.limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if f.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(matches.NewResponse(res))
	}
	return writeTable(out, res)
}

func writeTable(out io.Writer, res matches.Result) error {
	if len(res.Matches) == 0 {
		_, err := fmt.Fprintln(out, "no matching services")
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tSERVICE\tSCORE\tPRICE\tAGES\tNOTES")
	for i, m := range res.Matches {
		svc := m.Service
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d-%d\t%s\n",
			i+1,
			svc.Name,
			strconv.FormatFloat(m.Score, 'f', 2, 64),
			strconv.FormatFloat(svc.Price, 'f', -1, 64),
			svc.MinAge, svc.MaxAge,
			svc.Notes,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if res.Total > len(res.Matches) {
		fmt.Fprintf(out, "showing %d of %d\n", len(res.Matches), res.Total)
	}
	return nil
}

func optional(v string) any {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return v
}
