package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftswap/app/bootstrap"
	"github.com/x-xyz/nftswap/base/ctx"
	"github.com/x-xyz/nftswap/base/delivery"
	"github.com/x-xyz/nftswap/base/log"
	"github.com/x-xyz/nftswap/base/unit"
	"github.com/x-xyz/nftswap/domain/listing"
)

const usage = `usage: nftswap-cli [flags] <command>

commands:
  listings   print the active listings
  list       list --contract/--token for sale at --price
  update     set the price of your listing to --price
  revoke     cancel your listing
  buy        purchase a listing paying --price

flags:
`

var errUnknownCommand = xerrors.New("unknown command")

type app struct {
	reconcile listing.ReconcileUseCase
	mutation  listing.MutationUseCase
	signer    listing.Signer
	converter *unit.Converter
	out       io.Writer
}

func main() {
	flags := pflag.NewFlagSet("nftswap-cli", pflag.ContinueOnError)
	configPath := flags.StringP("config", "c", bootstrap.DefaultConfigPath, "path of the yaml config")
	contract := flags.String("contract", "", "nft contract address")
	token := flags.String("token", "", "token id")
	price := flags.String("price", "", "price in the major unit, e.g. 1.5")
	timeout := flags.Duration("timeout", 5*time.Minute, "give up after this long")
	flags.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flags.PrintDefaults()
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if flags.NArg() != 1 {
		flags.Usage()
		os.Exit(2)
	}

	if err := bootstrap.LoadConfig(*configPath); err != nil {
		log.Log().WithField("err", err).Error("bootstrap.LoadConfig failed")
		os.Exit(1)
	}

	c, cancel := ctx.WithTimeout(ctx.Background(), *timeout)
	defer cancel()

	s, err := bootstrap.New(c)
	if err != nil {
		os.Exit(1)
	}

	a := &app{
		reconcile: s.Reconcile,
		mutation:  s.Mutation,
		signer:    s.Signer,
		converter: s.Converter,
		out:       os.Stdout,
	}
	in := &listing.Input{NftContract: *contract, TokenId: *token, Price: *price}
	if err := a.run(c, flags.Arg(0), in); err != nil {
		if xerrors.Is(err, errUnknownCommand) {
			fmt.Fprintln(os.Stderr, err)
			flags.Usage()
			os.Exit(2)
		}
		a.fail(err)
		os.Exit(1)
	}
}

func (a *app) run(c ctx.Ctx, cmd string, in *listing.Input) error {
	var (
		receipt *listing.Receipt
		err     error
	)
	switch cmd {
	case "listings":
		return a.printListings(c)
	case "list":
		receipt, err = a.mutation.CreateListing(c, a.signer, in)
	case "update":
		receipt, err = a.mutation.Reprice(c, a.signer, in)
	case "revoke":
		receipt, err = a.mutation.Revoke(c, a.signer, in)
	case "buy":
		receipt, err = a.mutation.Purchase(c, a.signer, in)
	default:
		return xerrors.Errorf("%w: %q", errUnknownCommand, cmd)
	}
	if err != nil {
		return err
	}
	return a.print(receipt)
}

type listingOut struct {
	NftContract string `json:"nftContract"`
	TokenId     string `json:"tokenId"`
	Seller      string `json:"seller"`
	Price       string `json:"price"`
}

func (a *app) printListings(c ctx.Ctx) error {
	snapshot, err := a.reconcile.Reconcile(c)
	if err != nil {
		return err
	}
	out := make([]listingOut, 0, len(snapshot.Listings))
	for _, l := range snapshot.Listings {
		out = append(out, listingOut{
			NftContract: string(l.NftContract),
			TokenId:     l.TokenId.String(),
			Seller:      string(l.Seller),
			Price:       a.converter.FromMinorUnits(l.Price).String(),
		})
	}
	for _, k := range snapshot.Skipped {
		c.WithField("key", k.String()).Warn("listing state unreadable, left out")
	}
	return a.print(out)
}

// print writes v in the same envelope the api responds with.
func (a *app) print(v interface{}) error {
	return a.write(delivery.JsonResponse{Data: v, Status: delivery.JsonResponseStatusSuccess})
}

func (a *app) fail(err error) {
	if werr := a.write(delivery.JsonResponse{Data: err.Error(), Status: delivery.JsonResponseStatusFail}); werr != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

func (a *app) write(resp delivery.JsonResponse) error {
	b, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, string(b))
	return err
}
