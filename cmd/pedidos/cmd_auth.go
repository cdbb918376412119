package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	password  string
	logoutAll bool
	showKeys  bool
)

func readPassword(cmd *cobra.Command) (string, error) {
	if password != "" {
		return password, nil
	}
	return prompt(cmd.OutOrStdout(), "Contraseña: ")
}

// pedidos login USER
var loginCmd = &cobra.Command{
	Use:   "login USUARIO",
	Short: "Inicia sesión y guarda el token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootApp()
		if err != nil {
			return err
		}
		pass, err := readPassword(cmd)
		if err != nil {
			return err
		}
		s, err := a.AuthUC.Login(cmd.Context(), args[0], pass)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "¡Bienvenido, %s!\n", s.Username)
		if s.IsAdmin() {
			fmt.Fprintln(cmd.OutOrStdout(), "Rol de administrador: podés usar \"pedidos admin\".")
		}
		return nil
	},
}

// pedidos register USER
var registerCmd = &cobra.Command{
	Use:   "register USUARIO",
	Short: "Crea una cuenta nueva",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootApp()
		if err != nil {
			return err
		}
		pass, err := readPassword(cmd)
		if err != nil {
			return err
		}
		if err := a.AuthUC.Register(cmd.Context(), args[0], pass); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Registro exitoso. Ahora podés iniciar sesión.")
		return nil
	},
}

// pedidos logout
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Cierra la sesión",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootApp()
		if err != nil {
			return err
		}
		if logoutAll {
			err = a.AuthUC.ClearAll(cmd.Context())
		} else {
			err = a.AuthUC.Logout(cmd.Context())
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Sesión cerrada.")
		return nil
	},
}

// pedidos whoami
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Muestra la sesión actual",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootApp()
		if err != nil {
			return err
		}
		s, err := a.AuthUC.Current(cmd.Context())
		if err != nil {
			return err
		}
		if showKeys {
			if err := printKeys(cmd.Context(), cmd.OutOrStdout(), a.Store); err != nil {
				return err
			}
		}
		if !s.IsLoggedIn {
			fmt.Fprintln(cmd.OutOrStdout(), "Sin sesión iniciada.")
			return nil
		}
		role := s.Role
		if role == "" {
			role = "-"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (rol: %s)\n", s.Username, role)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&password, "password", "p", "", "contraseña (si falta se pide por consola)")
	registerCmd.Flags().StringVarP(&password, "password", "p", "", "contraseña (si falta se pide por consola)")
	whoamiCmd.Flags().BoolVar(&showKeys, "keys", false, "lista las claves del almacenamiento local")
	logoutCmd.Flags().BoolVar(&logoutAll, "all", false, "borra también el carrito y todo el almacenamiento local")
}
