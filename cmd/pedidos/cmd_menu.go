package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/juanquiga/frontendfinal/internal/views"
)

var menuHTMLSource string

// pedidos menu
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Lista los productos del menú",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootApp()
		if err != nil {
			return err
		}
		products, err := a.CatalogWith(menuHTMLSource).List(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(products) == 0 {
			fmt.Fprintln(out, "No hay productos disponibles.")
			return nil
		}
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "Producto\tPrecio\tDescripción")
		for _, p := range products {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Nombre, views.COP(p.Precio), p.Descripcion)
		}
		return tw.Flush()
	},
}

func init() {
	menuCmd.Flags().StringVar(&menuHTMLSource, "html-source", "", "página HTML del menú (ruta o URL) usada si la API no responde")
}
