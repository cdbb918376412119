package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/juanquiga/frontendfinal/internal/usecase"
)

var contact usecase.ContactForm

// pedidos checkout
var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Envía el carrito como pedido",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootApp()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		id, err := a.CheckoutUC.Submit(cmd.Context(), contact)
		if err != nil {
			return err
		}
		if id != "" {
			fmt.Fprintf(out, "Pedido #%s enviado con éxito.\n", id)
		} else {
			fmt.Fprintln(out, "Pedido enviado con éxito.")
		}
		return nil
	},
}

func init() {
	checkoutCmd.Flags().StringVar(&contact.Nombre, "nombre", "", "nombre del cliente")
	checkoutCmd.Flags().StringVar(&contact.Telefono, "telefono", "", "teléfono de contacto")
	checkoutCmd.Flags().StringVar(&contact.Direccion, "direccion", "", "dirección de entrega")
}
