package main

import (
	"context"
	"crypto/rand"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	qrcode "github.com/skip2/go-qrcode"
	easy "github.com/t-tomalak/logrus-easy-formatter"

	"github.com/KatasonovYP/concordium-walletconnect/client"
	"github.com/KatasonovYP/concordium-walletconnect/connect"
	"github.com/KatasonovYP/concordium-walletconnect/connect/local"
	"github.com/KatasonovYP/concordium-walletconnect/setup"
	"github.com/KatasonovYP/concordium-walletconnect/utils"
)

const transferAmount = 1000 // microCCD

func main() {
	if err := run(); err != nil {
		logrus.WithError(err).Fatal("Demo failed.")
	}
}

func run() error {
	cfg, err := setup.LoadConfig()
	if err != nil {
		return err
	}
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(setup.LogLevel(cfg))
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "01-02 15:04:05.000",
		LogFormat:       "[%lvl%]   [%time%]   -   %msg%\n",
	})

	net, err := setup.ResolveNetwork(cfg)
	if err != nil {
		return err
	}
	wlt, err := setup.OpenWallet(cfg, rand.Reader)
	if err != nil {
		return err
	}
	if len(wlt.Addresses()) == 0 {
		addr := wlt.NewAccount().Address()
		logrus.WithField("address", addr).Info("Created demo account.")
	}
	receiver := wlt.NewAccount().Address()

	// A mobile wallet would scan this to join the session. The local
	// connector below stands in for it.
	deepLink := fmt.Sprintf("concordium://wc?network=%s", net.Name)
	qr, err := qrcode.New(deepLink, qrcode.Medium)
	if err != nil {
		return err
	}
	fmt.Println(qr.ToSmallString(false))
	fmt.Println("Scan to connect:", deepLink)

	c := client.New(net, func(delegate connect.WalletConnectionDelegate) connect.WalletConnector {
		return local.NewConnector(net, wlt, delegate)
	})
	defer func() {
		if err := c.Shutdown(context.Background()); err != nil {
			logrus.WithError(err).Warn("Shutdown failed.")
		}
	}()

	ctx := context.Background()
	connected, err := c.Connect(ctx)
	if err != nil {
		return err
	}
	if !connected {
		logrus.Info("User abandoned the connection.")
		return nil
	}

	account, err := c.Account()
	if err != nil {
		return err
	}
	logrus.WithField("account", account).Info("Session active.")

	logrus.WithField("amount", utils.MicroCCDString(transferAmount)).Info("Sending transfer.")
	hash, err := c.SendTransfer(ctx, receiver, transferAmount)
	if err != nil {
		return err
	}
	logrus.WithField("hash", hash).Info("Transfer submitted.")
	fmt.Println("Track it on CCDScan:", c.ExplorerURL(hash))

	sigs, err := c.SignString(ctx, "I control this account.")
	if err != nil {
		return err
	}
	logrus.WithField("signature", sigs[0][0]).Info("Ownership proof signed.")
	return nil
}
