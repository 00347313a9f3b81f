// kploss は .npy に保存された予測・教師・重みのキーポイントから損失を計算する。
//
//	kploss -type WingLoss -output pred.npy -target gt.npy -weight w.npy -grad grad.npy
package main

import (
	"flag"
	"log"
	"strings"

	tensor3d "github.com/sw965/crowpose/blas32/tensor/3d"
	"github.com/sw965/crowpose/dataset"
	"github.com/sw965/crowpose/loss"
	ojson "github.com/sw965/omw/encoding/json"
)

func main() {
	var (
		outputPath = flag.String("output", "", "予測キーポイントの .npy (N, K, D)")
		targetPath = flag.String("target", "", "教師キーポイントの .npy (N, K, D)")
		weightPath = flag.String("weight", "", "target_weight の .npy (省略時は全て1)")
		configPath = flag.String("config", "", "損失関数の設定 (JSON)。指定時は以下のフラグより優先される")
		gradPath   = flag.String("grad", "", "出力に関する勾配の書き出し先 (.npy, (N*K, D))")

		lossType        = flag.String("type", loss.SmoothL1Name, "損失関数 ("+strings.Join(loss.Names(), ", ")+")")
		useTargetWeight = flag.Bool("use-target-weight", false, "target_weight を使う")
		lossWeight      = flag.Float64("loss-weight", 1.0, "損失のスケール")
		omega           = flag.Float64("omega", float64(loss.DefaultOmega), "WingLoss の ω")
		epsilon         = flag.Float64("epsilon", float64(loss.DefaultEpsilon), "WingLoss の ε")
	)
	flag.Parse()

	if *outputPath == "" || *targetPath == "" {
		flag.Usage()
		log.Fatal("-output と -target は必須です。")
	}

	var cfg loss.Config
	if *configPath != "" {
		var err error
		cfg, err = ojson.Load[loss.Config](*configPath)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		lw, o, e := float32(*lossWeight), float32(*omega), float32(*epsilon)
		cfg = loss.Config{
			Type:            *lossType,
			UseTargetWeight: *useTargetWeight,
			LossWeight:      &lw,
			Omega:           &o,
			Epsilon:         &e,
		}
	}

	l, err := loss.Build(cfg)
	if err != nil {
		log.Fatal(err)
	}

	log.Print("load output <", *outputPath, ">")
	output, err := dataset.LoadNpy(*outputPath)
	if err != nil {
		log.Fatal(err)
	}
	log.Print("load target <", *targetPath, ">")
	target, err := dataset.LoadNpy(*targetPath)
	if err != nil {
		log.Fatal(err)
	}

	weight := tensor3d.NewOnesLike(output)
	if *weightPath != "" {
		log.Print("load weight <", *weightPath, ">")
		weight, err = dataset.LoadNpy(*weightPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	value, err := l.Func(output, target, weight)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("%s shape=%v loss=%g", cfg.Type, output.Shape(), value)

	if *gradPath != "" {
		grad, err := l.Derivative(output, target, weight)
		if err != nil {
			log.Fatal(err)
		}
		if err := dataset.SaveNpy(*gradPath, grad); err != nil {
			log.Fatal(err)
		}
		log.Print("gradient saved to <", *gradPath, ">")
	}
}
