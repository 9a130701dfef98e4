package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/smasonuk/cvboot"
	"github.com/spf13/cobra"
)

var profileEvery int

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Print the outer and inner radius along the boot",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolveParams(cmd)
		if err != nil {
			return err
		}
		if profileEvery < 1 {
			profileEvery = 1
		}

		samples := cvboot.SampleProfile(p, resolution())
		tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "i\tz\theight\tzone\tt\touter\tinner\twall\t")
		for i, s := range samples {
			if i%profileEvery != 0 && i != len(samples)-1 {
				continue
			}
			fmt.Fprintf(tw, "%d\t%.3f\t%.3f\t%s\t%.4f\t%.3f\t%.3f\t%.3f\t\n",
				i, s.Z, s.Height, s.Zone, s.T, s.Outer, s.Inner, s.Wall())
		}
		return tw.Flush()
	},
}

func init() {
	profileCmd.Flags().IntVar(&profileEvery, "every", 10, "print every n-th axial sample")
	rootCmd.AddCommand(profileCmd)
}
