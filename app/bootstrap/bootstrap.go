// Package bootstrap reads the config file and builds the services shared by
// the api server and the cli.
package bootstrap

import (
	"strings"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftswap/base/ctx"
	"github.com/x-xyz/nftswap/base/database/mongoclient"
	"github.com/x-xyz/nftswap/base/ethereum"
	"github.com/x-xyz/nftswap/base/log"
	"github.com/x-xyz/nftswap/base/unit"
	"github.com/x-xyz/nftswap/base/validator"
	"github.com/x-xyz/nftswap/domain"
	"github.com/x-xyz/nftswap/domain/activity"
	"github.com/x-xyz/nftswap/domain/listing"
	"github.com/x-xyz/nftswap/service/chain"
	"github.com/x-xyz/nftswap/service/chain/contract"
	"github.com/x-xyz/nftswap/service/query"
	activity_repository "github.com/x-xyz/nftswap/stores/activity/repository"
	listing_usecase "github.com/x-xyz/nftswap/stores/listing/usecase"
)

const DefaultConfigPath = "infra/configs/config.yaml"

// LoadConfig reads the yaml at path, NFTSWAP_* env vars override any key
// ("NFTSWAP_SIGNER_PRIVATEKEY" for signer.privateKey).
func LoadConfig(path string) error {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(path)
	viper.SetEnvPrefix("nftswap")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("network.rpcConcurrency", 8)
	viper.SetDefault("contract.maxBlockRange", 5000)
	viper.SetDefault("unit.decimals", unit.EtherDecimals)
	viper.SetDefault("reconcile.concurrency", 16)
	viper.SetDefault("reconcile.retryInterval", "500ms")

	if err := viper.ReadInConfig(); err != nil {
		return err
	}

	if lvl := viper.GetString("log.level"); lvl != "" {
		if err := log.SetLevel(lvl); err != nil {
			return xerrors.Errorf("invalid log.level %q: %w", lvl, err)
		}
	}
	if viper.GetBool("debug") {
		log.Log().Info("Service RUN on DEBUG mode")
	}
	return nil
}

// Services is everything a shell needs. Signer, ActivityRepo and Query are
// nil when not configured.
type Services struct {
	Client       *ethereum.ThrottledClient
	Ledger       listing.Ledger
	Reconcile    listing.ReconcileUseCase
	Mutation     listing.MutationUseCase
	Signer       listing.Signer
	Converter    *unit.Converter
	ActivityRepo activity.Repo
	Query        query.Mongo
}

func New(c ctx.Ctx) (*Services, error) {
	rpcUrl := viper.GetString("network.rpcUrl")
	c.WithField("rpcUrl", rpcUrl).Info("init eth client")
	ethClient, err := ethclient.DialContext(c, rpcUrl)
	if err != nil {
		c.WithField("err", err).Error("ethclient.DialContext failed")
		return nil, err
	}
	client := ethereum.NewThrottledClient(ethClient, viper.GetInt("network.rpcConcurrency"))

	contractAddr := domain.Address(viper.GetString("contract.address"))
	if !contractAddr.IsHex() {
		return nil, xerrors.Errorf("invalid contract.address %q", contractAddr)
	}

	ledger := contract.NewNftSwap(&contract.NftSwapCfg{
		ChainService:  chain.NewClient(client),
		Client:        client,
		Address:       contractAddr,
		StartBlock:    viper.GetUint64("contract.deployedBlock"),
		MaxBlockRange: viper.GetUint64("contract.maxBlockRange"),
	})

	s := &Services{
		Client:    client,
		Ledger:    ledger,
		Converter: unit.NewConverter(viper.GetInt32("unit.decimals")),
	}

	if uri := viper.GetString("mongo.uri"); uri != "" {
		c.Info("init mongo")
		mongoClient, err := mongoclient.ConnectMongoClient(&mongoclient.Config{
			URI:                uri,
			AuthDBName:         viper.GetString("mongo.authDBName"),
			DbName:             viper.GetString("mongo.dbName"),
			EnableSSL:          viper.GetBool("mongo.enableSSL"),
			SetSafe:            true,
			PoolSizeMultiplier: 2,
		})
		if err != nil {
			c.WithField("err", err).Error("mongoclient.ConnectMongoClient failed")
			return nil, err
		}
		s.Query = query.New(mongoClient, viper.GetBool("mongo.checkIndex"))
		s.ActivityRepo = activity_repository.NewActivityRepo(s.Query)
	}

	if key := viper.GetString("signer.privateKey"); key != "" {
		chainId := domain.ChainId(viper.GetInt64("network.chainId"))
		if chainId == 0 {
			id, err := client.ChainID(c)
			if err != nil {
				c.WithField("err", err).Error("client.ChainID failed")
				return nil, err
			}
			chainId = domain.ChainId(id.Int64())
		}
		signer, err := ethereum.NewKeySignerFromHex(key, chainId)
		if err != nil {
			c.WithField("err", err).Error("ethereum.NewKeySignerFromHex failed")
			return nil, err
		}
		c.WithField("address", signer.Address()).Info("signer loaded")
		s.Signer = signer
	}

	s.Reconcile = listing_usecase.NewReconciler(&listing_usecase.ReconcilerCfg{
		Ledger:        ledger,
		Concurrency:   viper.GetInt("reconcile.concurrency"),
		RetryInterval: viper.GetDuration("reconcile.retryInterval"),
	})
	s.Mutation = listing_usecase.NewMutation(&listing_usecase.MutationCfg{
		Ledger:       ledger,
		Converter:    s.Converter,
		Validate:     validator.New(),
		ActivityRepo: s.ActivityRepo,
	})
	return s, nil
}
