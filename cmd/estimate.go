package cmd

import (
	"fmt"

	"github.com/ajay-constructions/estimator/internal/estimation"
	"github.com/ajay-constructions/estimator/internal/gemini"
	"github.com/ajay-constructions/estimator/internal/imagecache"
	"github.com/ajay-constructions/estimator/internal/models"
	"github.com/ajay-constructions/estimator/internal/session"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newEstimateCmd() *cobra.Command {
	var client string
	var category string
	var zone string
	var grade string
	var buildingType string
	var sqft float64
	var cacheDir string
	var noImage bool

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Run a one-shot estimate from the command line",
		Long: `Runs a single submission against the same estimation client and weekly
image cache the server uses, and prints the resulting quote as YAML.`,
		Example: `  estimator estimate --client "Gachibowli Flat 402" \
    --category "Paint & Finishes" --zone Gachibowli --grade Premium --sqft 1000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := models.ProjectRequest{
				ClientName:   client,
				Category:     models.Category(category),
				Zone:         zone,
				Grade:        models.Grade(grade),
				BuildingType: buildingType,
				AreaSqft:     sqft,
			}

			provider := gemini.New()
			var images session.ImageResolver
			if !noImage {
				images = imagecache.New(cacheDir, provider)
			}
			service := session.NewService(estimation.NewClient(provider), images, nil)

			sess := session.NewStore().Create()
			quote, err := service.Submit(cmd.Context(), sess, req)
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(quote)
			if err != nil {
				return fmt.Errorf("failed to encode quote: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&client, "client", "", "Project / client name")
	cmd.Flags().StringVar(&category, "category", string(models.CategoryWholeBuild), "Service category")
	cmd.Flags().StringVar(&zone, "zone", "Madhapur", "Hyderabad sub-zone")
	cmd.Flags().StringVar(&grade, "grade", string(models.GradeStandard), "Finishing grade")
	cmd.Flags().StringVar(&buildingType, "building-type", "", "Building type (Independent House or Apartment Flat)")
	cmd.Flags().Float64Var(&sqft, "sqft", 0, "Area in square feet")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "image_cache", "Directory for the weekly image cache")
	cmd.Flags().BoolVar(&noImage, "no-image", false, "Skip illustrative image resolution")

	return cmd
}
