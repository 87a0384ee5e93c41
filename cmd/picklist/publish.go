package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/picklist-dev/picklist/internal/errors"
	"github.com/picklist-dev/picklist/pkg/publish"
	"github.com/picklist-dev/picklist/showcase"
)

func publishCmd() *cobra.Command {
	var (
		dir      string
		bucket   string
		prefix   string
		region   string
		pretty   bool
		maxBytes int64
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish static snapshots of every page",
		Long: `Render every showcase page and store the HTML.

Routes map to keys the usual way: / becomes index.html, /tasks
becomes tasks.html. Snapshots are inert; they carry no live
bootstrap.

Examples:
  picklist publish
  picklist publish --dir=dist
  picklist publish --s3-bucket=my-site --s3-prefix=picklist
  picklist publish --s3-bucket=my-site --region=eu-west-1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(dir, bucket, prefix, region, pretty, maxBytes)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "public", "Output directory for local snapshots")
	cmd.Flags().StringVar(&bucket, "s3-bucket", "", "S3 bucket to publish to (overrides --dir)")
	cmd.Flags().StringVar(&prefix, "s3-prefix", "", "Key prefix inside the bucket")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default from the environment)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the HTML output")
	cmd.Flags().Int64Var(&maxBytes, "max-bytes", 0, "Per-page size limit in bytes (0 = unlimited)")

	return cmd
}

func runPublish(dir, bucket, prefix, region string, pretty bool, maxBytes int64) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store, dest, err := newStore(ctx, dir, bucket, prefix, region, maxBytes)
	if err != nil {
		return err
	}

	opts := []publish.Option{publish.WithLogger(newLogger("info"))}
	if pretty {
		opts = append(opts, publish.WithPretty())
	}

	pages := showcase.StaticPages()
	if err := publish.New(store, opts...).PublishSite(ctx, pages); err != nil {
		return err
	}

	success("Published %d pages to %s", len(pages), dest)
	return nil
}

// newStore picks the snapshot destination: S3 when a bucket is named,
// the local directory otherwise. The second return is the destination
// as shown to the user.
func newStore(ctx context.Context, dir, bucket, prefix, region string, maxBytes int64) (publish.Store, string, error) {
	if bucket == "" {
		if prefix != "" || region != "" {
			return nil, "", errors.New("E061")
		}
		store, err := publish.NewDiskStore(dir, maxBytes)
		if err != nil {
			return nil, "", errors.New("E040").WithDetail("cannot create %q", dir).Wrap(err)
		}
		return store, dir, nil
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, "", errors.New("E062").Wrap(err)
	}

	store := publish.NewS3Store(s3.NewFromConfig(awsCfg), bucket, prefix, maxBytes)
	return store, store.URL(""), nil
}
