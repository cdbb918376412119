package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/juanquiga/frontendfinal/internal/domain"
	"github.com/juanquiga/frontendfinal/internal/views"
)

func printCart(w io.Writer, items []domain.CartItem) error {
	if len(items) == 0 {
		fmt.Fprintln(w, "El carrito está vacío.")
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tProducto\tPrecio\tCantidad\tSubtotal")
	for i, it := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", i+1, it.Product, views.COP(it.UnitPrice), it.Quantity, views.COP(it.Subtotal()))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Total: %s\n", views.COP(domain.CartTotal(items)))
	return nil
}

// cartRunner envuelve los comandos que modifican el carrito y luego lo muestran.
func cartRunner(fn func(cmd *cobra.Command, args []string) ([]domain.CartItem, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if _, err := bootApp(); err != nil {
			return err
		}
		items, err := fn(cmd, args)
		if err != nil {
			return err
		}
		return printCart(cmd.OutOrStdout(), items)
	}
}

// pedidos cart
var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Muestra y modifica el carrito",
	RunE: cartRunner(func(cmd *cobra.Command, args []string) ([]domain.CartItem, error) {
		return application.CartUC.Items(cmd.Context())
	}),
}

var cartListCmd = &cobra.Command{
	Use:   "list",
	Short: "Muestra el carrito",
	RunE:  cartCmd.RunE,
}

var cartAddCmd = &cobra.Command{
	Use:   "add PRODUCTO",
	Short: "Agrega un producto del menú al carrito",
	Args:  cobra.ExactArgs(1),
	RunE: cartRunner(func(cmd *cobra.Command, args []string) ([]domain.CartItem, error) {
		p, err := application.CatalogUC.AddToCart(cmd.Context(), args[0])
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s agregado al carrito.\n", p.Nombre)
		return application.CartUC.Items(cmd.Context())
	}),
}

var cartIncCmd = &cobra.Command{
	Use:   "inc N",
	Short: "Suma una unidad al ítem N",
	Args:  cobra.ExactArgs(1),
	RunE: cartRunner(func(cmd *cobra.Command, args []string) ([]domain.CartItem, error) {
		i, err := position(args[0])
		if err != nil {
			return nil, err
		}
		return application.CartUC.Increment(cmd.Context(), i)
	}),
}

var cartDecCmd = &cobra.Command{
	Use:   "dec N",
	Short: "Resta una unidad al ítem N; en 1 lo quita",
	Args:  cobra.ExactArgs(1),
	RunE: cartRunner(func(cmd *cobra.Command, args []string) ([]domain.CartItem, error) {
		i, err := position(args[0])
		if err != nil {
			return nil, err
		}
		return application.CartUC.Decrement(cmd.Context(), i)
	}),
}

var cartSetCmd = &cobra.Command{
	Use:   "set N CANTIDAD",
	Short: "Fija la cantidad del ítem N (mínimo 1)",
	Args:  cobra.ExactArgs(2),
	RunE: cartRunner(func(cmd *cobra.Command, args []string) ([]domain.CartItem, error) {
		i, err := position(args[0])
		if err != nil {
			return nil, err
		}
		return application.CartUC.SetQuantity(cmd.Context(), i, args[1])
	}),
}

var cartRmCmd = &cobra.Command{
	Use:   "rm N",
	Short: "Quita el ítem N",
	Args:  cobra.ExactArgs(1),
	RunE: cartRunner(func(cmd *cobra.Command, args []string) ([]domain.CartItem, error) {
		i, err := position(args[0])
		if err != nil {
			return nil, err
		}
		return application.CartUC.Remove(cmd.Context(), i)
	}),
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Vacía el carrito",
	RunE: cartRunner(func(cmd *cobra.Command, args []string) ([]domain.CartItem, error) {
		if err := application.CartUC.Clear(cmd.Context()); err != nil {
			return nil, err
		}
		return nil, nil
	}),
}

func init() {
	cartCmd.AddCommand(cartListCmd, cartAddCmd, cartIncCmd, cartDecCmd, cartSetCmd, cartRmCmd, cartClearCmd)
}
