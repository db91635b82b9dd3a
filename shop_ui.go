package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/milk9111/timberjack/common"
)

// NewShopUI lists the catalog with one buy button per upgrade. Owned or
// unaffordable upgrades are disabled. It is rebuilt whenever money or the
// catalog changes.
func NewShopUI(g *Game) *ebitenui.UI {
	face := uiFace()
	btnTextColor := &widget.ButtonTextColor{Idle: uiTextColor, Disabled: uiDisabledColor}

	panel := uiPanel(common.BaseWidth*2/3, common.BaseHeight/2)
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(fmt.Sprintf("Upgrade shop  ($%d)", g.player.Money), face, uiTextColor),
		widget.TextOpts.WidgetOpts(uiCentered()),
	))

	for _, item := range g.shop.Catalog().Items {
		name := item.Name
		owned := g.player.HasUpgrade(name)

		label := fmt.Sprintf("%s  $%d  %s", item.Title, item.Cost, item.Description)
		if owned {
			label = item.Title + "  (owned)"
		}
		btn := widget.NewButton(
			widget.ButtonOpts.Image(uiButtonImage()),
			widget.ButtonOpts.Text(label, face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(uiCentered()),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				g.requestPurchase(name)
			}),
		)
		btn.GetWidget().Disabled = owned || g.player.Money < item.Cost
		panel.AddChild(btn)
	}

	panel.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(uiButtonImage()),
		widget.ButtonOpts.Text("Close", face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(uiCentered()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.shopOpen = false
		}),
	))
	return uiRoot(panel)
}
