package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/juanquiga/frontendfinal/internal/adapters/backend"
	"github.com/juanquiga/frontendfinal/internal/domain"
)

var stdin = bufio.NewReader(os.Stdin)

// userMessage traduce un error al texto que ve el usuario. El mensaje del servidor
// tiene prioridad sobre los textos genéricos.
func userMessage(err error) string {
	var apiErr *backend.APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, domain.ErrEmptyCart):
		return "El carrito está vacío."
	case errors.Is(err, domain.ErrNotLoggedIn):
		return "Debés iniciar sesión primero (pedidos login)."
	case errors.Is(err, domain.ErrForbidden):
		return "Acceso denegado. Se requiere rol de administrador."
	case errors.Is(err, domain.ErrSessionExpired):
		return "Sesión expirada. Iniciá sesión nuevamente."
	case errors.Is(err, domain.ErrCancelled):
		return "Operación cancelada."
	}
	return err.Error()
}

// prompt muestra label y lee una línea de stdin.
func prompt(w io.Writer, label string) (string, error) {
	fmt.Fprint(w, label)
	line, err := stdin.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func confirmer(w io.Writer, assumeYes bool) func(string) bool {
	return func(msg string) bool {
		if assumeYes {
			return true
		}
		ans, err := prompt(w, msg+" [s/N]: ")
		if err != nil {
			return false
		}
		switch strings.ToLower(ans) {
		case "s", "si", "sí", "y", "yes":
			return true
		}
		return false
	}
}

// position convierte la posición que muestra "cart list" (desde 1) a índice.
func position(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("posición inválida: %q", arg)
	}
	return n - 1, nil
}

// printKeys muestra las claves guardadas cuando el almacenamiento sabe listarlas.
func printKeys(ctx context.Context, w io.Writer, store domain.KVStore) error {
	kl, ok := store.(domain.KeyLister)
	if !ok {
		fmt.Fprintln(w, "El almacenamiento no permite listar claves.")
		return nil
	}
	keys, err := kl.Keys(ctx)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		fmt.Fprintln(w, "Almacenamiento local vacío.")
		return nil
	}
	fmt.Fprintf(w, "Claves guardadas: %s\n", strings.Join(keys, ", "))
	return nil
}
