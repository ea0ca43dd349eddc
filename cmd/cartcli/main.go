// Command cartcli drives the storefront cart from the terminal through the
// client cart adapter, including its persisted local cache.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/Dreadpool/TacticalGearForge/internal/cartclient"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "base URL of the storefront API")
	cachePath := flag.String("cache", "tactical-cart.db", "path of the persisted cart cache")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	cache, err := cartclient.OpenCache(*cachePath)
	if err != nil {
		log.Fatalf("open cache: %v", err)
	}
	defer cache.Close()

	client := cartclient.NewClient(*addr)
	notifier := cartclient.NotifierFunc(func(title, message string) {
		fmt.Printf(">> %s: %s\n", title, message)
	})
	adapter := cartclient.NewAdapter(client, cache, notifier)

	ctx := context.Background()
	if err := run(ctx, client, adapter, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, client *cartclient.Client, adapter *cartclient.Adapter, args []string) error {
	switch args[0] {
	case "list":
		if err := adapter.Refresh(ctx); err != nil {
			fmt.Println("server unreachable, showing cached cart")
		}
	case "add":
		productID, quantity, err := intArgs(args[1:], 1)
		if err != nil {
			return err
		}
		product, err := client.FetchProduct(ctx, productID)
		if err != nil {
			return fmt.Errorf("fetch product %d: %w", productID, err)
		}
		if err := adapter.AddItem(ctx, *product, quantity); err != nil {
			return err
		}
	case "update":
		id, quantity, err := intArgs(args[1:], 0)
		if err != nil {
			return err
		}
		if quantity == 0 {
			return fmt.Errorf("update requires <id> <quantity>")
		}
		if err := adapter.UpdateItem(ctx, id, quantity); err != nil {
			return err
		}
	case "rm":
		if len(args) < 2 {
			return fmt.Errorf("rm requires <id>")
		}
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[1])
		}
		if err := adapter.RemoveItem(ctx, id); err != nil {
			return err
		}
	case "clear":
		if err := adapter.Clear(ctx); err != nil {
			return err
		}
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}

	printCart(adapter)
	return nil
}

func printCart(adapter *cartclient.Adapter) {
	items := adapter.Items()
	if len(items) == 0 {
		fmt.Println("cart is empty")
		return
	}
	for _, item := range items {
		fmt.Printf("#%d  %dx %s  @ %s\n", item.ID, item.Quantity, item.Product.Name, item.Product.Price)
	}
	count, total, err := adapter.Totals()
	if err != nil {
		fmt.Printf("totals unavailable: %v\n", err)
		return
	}
	fmt.Printf("%d items, total %s\n", count, total.StringFixed(2))
}

func intArgs(args []string, defaultSecond int) (int, int, error) {
	if len(args) < 1 {
		return 0, 0, fmt.Errorf("missing id argument")
	}
	first, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid number %q", args[0])
	}
	second := defaultSecond
	if len(args) > 1 {
		second, err = strconv.Atoi(args[1])
		if err != nil {
			return 0, 0, fmt.Errorf("invalid number %q", args[1])
		}
	}
	return first, second, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: cartcli [flags] <command>

commands:
  list                 show the cart (cached when the server is down)
  add <productId> [n]  add n of a product (default 1)
  update <id> <n>      set a cart line's quantity
  rm <id>              remove a cart line
  clear                empty the cart

flags:
`)
	flag.PrintDefaults()
}
