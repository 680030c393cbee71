package payment

import (
	"net/http"

	"github.com/BaoDuy1703/Ecommerce/internal/commerce"
	"github.com/BaoDuy1703/Ecommerce/internal/pkg/apperror"

	midtransgo "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type snapProvider struct {
	client snap.Client
}

func NewSnapProvider(serverKey string, isProduction bool) SnapProvider {
	env := midtransgo.Sandbox
	if isProduction {
		env = midtransgo.Production
	}

	c := snap.Client{}
	c.New(serverKey, env)

	return &snapProvider{client: c}
}

func (p *snapProvider) CreateSession(o commerce.Order) (commerce.PaymentSession, error) {
	items := make([]midtransgo.ItemDetails, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, midtransgo.ItemDetails{
			ID:    item.ProductID,
			Price: item.UnitPrice,
			Qty:   item.Quantity,
			Name:  item.Name,
		})
	}

	snapReq := &snap.Request{
		TransactionDetails: midtransgo.TransactionDetails{
			OrderID:  o.ID,
			GrossAmt: o.TotalAmount,
		},
		Items: &items,
	}

	snapResp, err := p.client.CreateTransaction(snapReq)
	if err != nil {
		return commerce.PaymentSession{}, apperror.New(
			apperror.CodeTransport,
			"midtrans rejected the transaction",
			http.StatusBadGateway,
		)
	}

	return commerce.PaymentSession{
		Provider:    ProviderMidtrans,
		CheckoutURL: snapResp.RedirectURL,
	}, nil
}
