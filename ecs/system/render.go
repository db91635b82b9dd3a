package system

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/timberjack/ecs"
	"github.com/milk9111/timberjack/ecs/component"
	"github.com/milk9111/timberjack/obj"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var (
	colorLeg       = color.RGBA{0x8B, 0x45, 0x13, 0xff}
	colorShoe      = color.RGBA{0x4A, 0x37, 0x28, 0xff}
	colorSole      = color.RGBA{0x2C, 0x18, 0x10, 0xff}
	colorShirt     = color.RGBA{0xA0, 0x52, 0x2D, 0xff}
	colorPlaid     = color.RGBA{0x8B, 0x00, 0x00, 0xff}
	colorFace      = color.RGBA{0xDE, 0xB8, 0x87, 0xff}
	colorBeard     = color.RGBA{0x8B, 0x45, 0x13, 0xff}
	colorHandle    = color.RGBA{0x8B, 0x45, 0x13, 0xff}
	colorBlade     = color.RGBA{0xC0, 0xC0, 0xC0, 0xff}
	colorBladeEdge = color.RGBA{0x80, 0x80, 0x80, 0xff}
	colorTrunk     = color.RGBA{0x6B, 0x42, 0x26, 0xff}
	colorStump     = color.RGBA{0xC8, 0x9B, 0x6D, 0xff}
)

const (
	barBaseWidth  = 60.0
	barHeight     = 10.0
	barSkillScale = 0.5
	restAxeAngle  = 30.0
)

// RenderSystem draws the forest, the boss and the procedural lumberjack.
type RenderSystem struct {
	Sky    color.Color
	Ground color.Color

	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
	face          text.Face
}

func NewRenderSystem(sky, ground color.Color) *RenderSystem {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &RenderSystem{
		Sky:           sky,
		Ground:        ground,
		whiteImage:    white,
		whiteSubImage: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		face:          text.NewGoXFace(basicfont.Face7x13),
	}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil {
		return
	}
	sess := sessionOf(w)
	if sess == nil {
		return
	}

	screen.Fill(r.Sky)
	vector.FillRect(screen, 0, float32(sess.Height-4), float32(sess.Width), 4, r.Ground, false)

	ecs.ForEach2(w, component.TreeComponent, component.TransformComponent, func(e ecs.Entity, tree *component.Tree, t *component.Transform) {
		r.drawTree(screen, tree, t, ecs.Has(w, e, component.CutTargetComponent))
	})
	ecs.ForEach2(w, component.BossComponent, component.TransformComponent, func(e ecs.Entity, b *component.Boss, t *component.Transform) {
		r.drawBoss(screen, b, t, ecs.Has(w, e, component.CutTargetComponent))
	})
	ecs.ForEach(w, component.PlayerComponent, func(_ ecs.Entity, pc *component.Player) {
		if pc.Actor != nil {
			r.drawPlayer(screen, pc.Actor, sess.SkillLevel)
		}
	})
	ecs.ForEach2(w, component.PopupComponent, component.TransformComponent, func(_ ecs.Entity, p *component.Popup, t *component.Transform) {
		r.drawPopup(screen, p, t)
	})
}

func (r *RenderSystem) drawPopup(dst *ebiten.Image, p *component.Popup, t *component.Transform) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(t.X, t.Y)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(p.Color)
	op.ColorScale.ScaleAlpha(float32(p.Alpha))
	text.Draw(dst, p.Text, r.face, op)
}

func (r *RenderSystem) drawTree(dst *ebiten.Image, tree *component.Tree, t *component.Transform, targeted bool) {
	x, y := float32(t.X), float32(t.Y)
	tw, th := float32(tree.Width), float32(tree.Height)

	if tree.Felled {
		vector.FillRect(dst, x, y+th-12, tw, 12, colorTrunk, false)
		vector.FillRect(dst, x+2, y+th-12, tw-4, 3, colorStump, false)
		return
	}

	vector.FillRect(dst, x, y, tw, th, colorTrunk, false)
	leaves := tree.Leaves
	if leaves == nil {
		leaves = colornames.Forestgreen
	}
	radius := tw * 1.6
	cx := x + tw/2
	vector.DrawFilledCircle(dst, cx, y, radius, leaves, true)
	vector.DrawFilledCircle(dst, cx-radius*0.7, y+radius*0.5, radius*0.8, leaves, true)
	vector.DrawFilledCircle(dst, cx+radius*0.7, y+radius*0.5, radius*0.8, leaves, true)

	if targeted {
		vector.StrokeRect(dst, x-2, y-2, tw+4, th+4, 2, colornames.Yellow, false)
	}
}

func (r *RenderSystem) drawBoss(dst *ebiten.Image, b *component.Boss, t *component.Transform, targeted bool) {
	sway := float32(math.Sin(float64(b.Frames)*0.05) * 3)
	x, y := float32(t.X)+sway, float32(t.Y)
	bw, bh := float32(b.Width), float32(b.Height)

	body := b.Color
	if body == nil {
		body = colorTrunk
	}
	vector.FillRect(dst, x, y, bw, bh, body, false)
	vector.DrawFilledCircle(dst, x+bw/2, y, bw, colornames.Darkgreen, true)
	vector.FillRect(dst, x+bw*0.2, y+bh*0.25, bw*0.2, 8, colornames.Red, false)
	vector.FillRect(dst, x+bw*0.6, y+bh*0.25, bw*0.2, 8, colornames.Red, false)
	vector.FillRect(dst, x+bw*0.25, y+bh*0.4, bw*0.5, 6, color.Black, false)

	if targeted {
		vector.StrokeRect(dst, x-2, y-2, bw+4, bh+4, 2, colornames.Yellow, false)
	}
	ebitenutil.DebugPrintAt(dst, b.Name, int(x), int(y)-int(bw)-16)
}

func (r *RenderSystem) drawPlayer(dst *ebiten.Image, p *obj.Player, skill float64) {
	x, y := p.Pos.X, p.Pos.Y
	cut, cutting := p.Cutting()

	rect := func(rx, ry, rw, rh float64, clr color.Color) {
		vector.FillRect(dst, float32(rx), float32(ry), float32(rw), float32(rh), clr, false)
	}

	legOffset := math.Sin(float64(p.WalkFrame())*0.2) * 4
	rect(x+8, y+40+legOffset, 7, 8, colorLeg)
	rect(x+18, y+40-legOffset, 6, 8, colorLeg)
	rect(x+6, y+46+legOffset, 9, 4, colorShoe)
	rect(x+16, y+46-legOffset, 9, 4, colorShoe)
	rect(x+6, y+48+legOffset, 9, 2, colorSole)
	rect(x+16, y+48-legOffset, 9, 2, colorSole)

	rect(x+8, y+12, 16, 28, colorShirt)
	for i := 0.0; i < 3; i++ {
		rect(x+8+i*6, y+12, 2, 28, colorPlaid)
		rect(x+8, y+12+i*8, 16, 2, colorPlaid)
	}

	if cutting {
		armAngle := math.Sin(cut.Progress*0.1) * 0.5
		r.fillRotatedRect(dst, cp.Vector{X: x + 16, Y: y + 16}, armAngle, -4, -4, 8, 20, colorShirt)
	} else {
		rect(x+4, y+16, 8, 16, colorShirt)
		rect(x+20, y+16, 8, 16, colorShirt)
	}

	rect(x+8, y, 16, 12, colorFace)
	if p.FacingRight {
		rect(x+16, y+4, 2, 2, color.Black)
		rect(x+19, y+4, 2, 2, color.Black)
		rect(x+16, y+8, 4, 1, color.Black)
	} else {
		rect(x+11, y+4, 2, 2, color.Black)
		rect(x+14, y+4, 2, 2, color.Black)
		rect(x+12, y+8, 4, 1, color.Black)
	}
	rect(x+8, y+8, 16, 4, colorBeard)

	r.drawAxe(dst, p, cutting)

	if cutting {
		r.drawCutBar(dst, p, cut, skill)
	}
}

func (r *RenderSystem) drawAxe(dst *ebiten.Image, p *obj.Player, cutting bool) {
	x, y := p.Pos.X, p.Pos.Y
	deg := restAxeAngle
	if cutting {
		deg = p.SwingAngle()
	}

	// mirror is +1 facing right, -1 facing left
	mirror := 1.0
	pivot := cp.Vector{X: x + 28, Y: y + 20}
	if !p.FacingRight {
		mirror = -1
		pivot = cp.Vector{X: x + 4, Y: y + 20}
	}
	angle := mirror * deg * math.Pi / 180

	r.fillRotatedRect(dst, pivot, angle, mirror*7-8, -2, 16, 4, colorHandle)
	r.fillPolygon(dst, []cp.Vector{
		rotateAbout(pivot, angle, mirror*14, -8),
		rotateAbout(pivot, angle, mirror*14, 8),
		rotateAbout(pivot, angle, mirror*6, 0),
	}, colorBlade)
	edgeX := 13.0
	if mirror < 0 {
		edgeX = -15
	}
	r.fillRotatedRect(dst, pivot, angle, edgeX, -6, 2, 12, colorBladeEdge)
}

// drawCutBar draws the timing bar. Its width grows with the host skill level;
// the highlighted window mirrors the player's sweet spot.
func (r *RenderSystem) drawCutBar(dst *ebiten.Image, p *obj.Player, cut obj.Cut, skill float64) {
	barWidth := barBaseWidth + skill*barSkillScale
	bx := p.Pos.X - 10
	by := p.Pos.Y - 20

	lo := p.Stats.SweetSpotMin / 100
	hi := p.Stats.SweetSpotMax / 100

	vector.FillRect(dst, float32(bx), float32(by), float32(barWidth), barHeight, color.Black, false)
	vector.FillRect(dst, float32(bx+barWidth*lo), float32(by), float32(barWidth*(hi-lo)), barHeight, colornames.Yellow, false)
	vector.FillRect(dst, float32(bx+barWidth*cut.Progress/100), float32(by), 2, barHeight, colornames.Red, false)
}

func rotateAbout(pivot cp.Vector, angle, lx, ly float64) cp.Vector {
	sin, cos := math.Sincos(angle)
	return cp.Vector{X: pivot.X + lx*cos - ly*sin, Y: pivot.Y + lx*sin + ly*cos}
}

func (r *RenderSystem) fillRotatedRect(dst *ebiten.Image, pivot cp.Vector, angle, lx, ly, w, h float64, clr color.Color) {
	r.fillPolygon(dst, []cp.Vector{
		rotateAbout(pivot, angle, lx, ly),
		rotateAbout(pivot, angle, lx+w, ly),
		rotateAbout(pivot, angle, lx+w, ly+h),
		rotateAbout(pivot, angle, lx, ly+h),
	}, clr)
}

func (r *RenderSystem) fillPolygon(dst *ebiten.Image, pts []cp.Vector, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		path.LineTo(float32(pt.X), float32(pt.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	cr, cg, cb, ca := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(cr) / 0xffff
		vs[i].ColorG = float32(cg) / 0xffff
		vs[i].ColorB = float32(cb) / 0xffff
		vs[i].ColorA = float32(ca) / 0xffff
	}
	dst.DrawTriangles(vs, is, r.whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
