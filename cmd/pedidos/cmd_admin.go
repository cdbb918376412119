package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/juanquiga/frontendfinal/internal/adapters/sheets"
	"github.com/juanquiga/frontendfinal/internal/app"
	"github.com/juanquiga/frontendfinal/internal/domain"
	"github.com/juanquiga/frontendfinal/internal/usecase"
	"github.com/juanquiga/frontendfinal/internal/views"
)

var (
	adminQuery  string
	adminEstado string
	adminHTML   string
	adminXLSX   string
	assumeYes   bool
)

// adminOrders verifica la sesión de administrador y carga los pedidos ordenados.
func adminOrders(cmd *cobra.Command) (*app.App, []domain.AdminOrder, string, error) {
	a, err := bootApp()
	if err != nil {
		return nil, nil, "", err
	}
	orders, source, err := a.AdminUC.Open(cmd.Context())
	if err != nil {
		return nil, nil, "", err
	}
	usecase.SortNewestFirst(orders)
	return a, orders, source, nil
}

func printOrders(w io.Writer, all, shown []domain.AdminOrder) error {
	st := usecase.Stats(all)
	fmt.Fprintf(w, "Total: %d  Pendientes: %d  Atendidos: %d  Cancelados: %d\n\n", st.Total, st.Pending, st.Attended, st.Cancelled)
	if len(shown) == 0 {
		fmt.Fprintln(w, "No hay pedidos para mostrar.")
		return nil
	}
	return printOrderTable(w, shown)
}

func printOrderTable(w io.Writer, shown []domain.AdminOrder) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tFecha\tCliente\tTeléfono\tDirección\tItems\tTotal\tEstado")
	for _, o := range shown {
		fmt.Fprintf(tw, "#%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			o.ID, views.FormatFecha(o.Fecha), views.OrDash(o.Nombre), views.OrDash(o.Telefono),
			views.OrDash(o.Direccion), views.ItemsPreview(o), views.Money(o.EffectiveTotal()), o.Estado)
	}
	return tw.Flush()
}

// pedidos admin
var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Panel de administración de pedidos",
}

var adminListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista los pedidos con estadísticas y filtros",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, orders, source, err := adminOrders(cmd)
		if err != nil {
			return err
		}
		filter := domain.OrderFilter{Query: adminQuery}
		if adminEstado != "" {
			filter.Status, _ = domain.ParseOrderStatus(adminEstado)
		}
		shown := usecase.Filter(orders, filter)
		out := cmd.OutOrStdout()

		if adminHTML != "" {
			f, err := os.Create(adminHTML)
			if err != nil {
				return err
			}
			if err := a.RenderOrders(f, source, orders, shown); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(out, "Reporte HTML escrito en %s\n", adminHTML)
		}
		if adminXLSX != "" {
			if err := sheets.SaveOrders(adminXLSX, shown); err != nil {
				return err
			}
			fmt.Fprintf(out, "Planilla escrita en %s\n", adminXLSX)
		}
		if adminHTML == "" && adminXLSX == "" {
			fmt.Fprintf(out, "Fuente: %s\n", views.OrDash(source))
			return printOrders(out, orders, shown)
		}
		return nil
	},
}

var adminShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Muestra el detalle de un pedido",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, orders, _, err := adminOrders(cmd)
		if err != nil {
			return err
		}
		o, err := usecase.FindOrder(orders, args[0])
		if err != nil {
			return fmt.Errorf("pedido %s: %w", args[0], err)
		}
		return a.RenderOrder(cmd.OutOrStdout(), *o)
	},
}

func transitionCmd(use, short string, next domain.OrderStatus) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, orders, _, err := adminOrders(cmd)
			if err != nil {
				return err
			}
			o, err := usecase.FindOrder(orders, args[0])
			if err != nil {
				return fmt.Errorf("pedido %s: %w", args[0], err)
			}
			out := cmd.OutOrStdout()
			updated, err := a.AdminUC.Apply(cmd.Context(), *o, next, confirmer(out, assumeYes))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Pedido #%s marcado como %s.\n", o.ID, next)
			if updated == nil {
				return nil
			}
			fmt.Fprintln(out)
			return printOrderTable(out, []domain.AdminOrder{*updated})
		},
	}
}

var (
	adminAttendCmd = transitionCmd("atender", "Marca un pedido pendiente como ATENDIDO", domain.OrderStatusAttended)
	adminCancelCmd = transitionCmd("cancelar", "Cancela un pedido pendiente", domain.OrderStatusCancelled)
)

func init() {
	adminListCmd.Flags().StringVar(&adminQuery, "q", "", "texto a buscar en nombre, teléfono, dirección o número")
	adminListCmd.Flags().StringVar(&adminEstado, "estado", "", "PENDIENTE, ATENDIDO o CANCELADO")
	adminListCmd.Flags().StringVar(&adminHTML, "html", "", "escribe un reporte HTML en la ruta indicada")
	adminListCmd.Flags().StringVar(&adminXLSX, "xlsx", "", "exporta los pedidos filtrados a una planilla")

	for _, c := range []*cobra.Command{adminAttendCmd, adminCancelCmd} {
		c.Flags().BoolVarP(&assumeYes, "yes", "y", false, "no pedir confirmación")
	}
	adminCmd.AddCommand(adminListCmd, adminShowCmd, adminAttendCmd, adminCancelCmd)
}
