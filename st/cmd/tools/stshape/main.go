// stshape generates geodesic epicycloid polygons or lines anchored at
// each point of a GeoJSON feature collection.
package main

import (
	"context"
	"flag"
	"io/ioutil"
	"os"
	"os/signal"

	"shapetools/gogroup"
	"shapetools/st/coordsys"
	"shapetools/st/geojson"
	"shapetools/st/log"
	"shapetools/st/shapes"
	"shapetools/st/units"
)

var (
	inPath     string
	outPath    string
	shapeKind  string
	lobes      int
	radius     float64
	radiusUnit string
	startAngle float64
	segments   int
	lobesCol   string
	radiusCol  string
	angleCol   string
	exportGeom bool
	crsCode    string
)

func init() {
	flag.StringVar(&inPath, "in", "-", "Input GeoJSON file, - for stdin")
	flag.StringVar(&outPath, "out", "-", "Output GeoJSON file, - for stdout")
	flag.StringVar(&shapeKind, "shape", "polygon", "Shape type: polygon or line")
	flag.IntVar(&lobes, "lobes", 5, "Number of lobes")
	flag.Float64Var(&radius, "radius", 40, "Radius in the selected units")
	flag.StringVar(&radiusUnit, "units", "km", "Radius units of measure")
	flag.Float64Var(&startAngle, "angle", 0, "Starting angle in degrees")
	flag.IntVar(&segments, "segments", 720, "Number of drawing segments")
	flag.StringVar(&lobesCol, "lobes-field", "", "Attribute overriding the lobe count")
	flag.StringVar(&radiusCol, "radius-field", "", "Attribute overriding the radius")
	flag.StringVar(&angleCol, "angle-field", "", "Attribute overriding the starting angle")
	flag.BoolVar(&exportGeom, "export-geom", false, "Add input geometry fields to the output attributes")
	flag.StringVar(&crsCode, "crs", "EPSG:4326", "Reference frame of the input coordinates")
}

func main() {
	flag.Parse()
	log.Init("stshape")

	crs, ok := coordsys.ByEPSG(crsCode)
	if !ok {
		log.Fatal("Unknown reference frame: %v", crsCode)
	}
	unit, err := units.Parse(radiusUnit)
	if err != nil {
		log.Fatal("%v", err)
	}
	kind, err := shapes.ParseShapeKind(shapeKind)
	if err != nil {
		log.Fatal("%v", err)
	}

	req := shapes.DefaultRequest()
	req.Kind = kind
	req.Lobes = lobes
	req.Radius = radius
	req.Units = unit
	req.StartingAngle = startAngle
	req.Segments = segments
	req.LobesField = lobesCol
	req.RadiusField = radiusCol
	req.StartingAngleField = angleCol
	req.ExportGeom = exportGeom
	req.CRS = crs
	req.Progress = func(pct int) {
		log.Debug("progress: %v%%", pct)
	}

	engine, err := shapes.NewEngine(req)
	if err != nil {
		log.Fatal("%v", err)
	}

	fc, err := readCollection(inPath)
	if err != nil {
		log.Fatal("Could not read %v: %v", inPath, err)
	}

	ctxt := gogroup.New(context.Background(), "stshape")
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	go func() {
		<-interrupts
		log.Notice("interrupted, stopping after the current feature")
		ctxt.Cancel(nil)
	}()

	sink := new(shapes.CollectionSink)
	summary, err := engine.Run(ctxt, shapes.NewCollectionSource(fc), sink)
	if err != nil {
		log.Fatal("%v", err)
	}

	if err := writeCollection(outPath, &sink.Collection); err != nil {
		log.Fatal("Could not write %v: %v", outPath, err)
	}
	log.Info("wrote %v of %v features to %v", summary.Written, summary.Total, outPath)
}

func readCollection(path string) (*geojson.FeatureCollection, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = ioutil.ReadAll(os.Stdin)
	} else {
		data, err = ioutil.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return geojson.DecodeCollection(data)
}

func writeCollection(path string, fc *geojson.FeatureCollection) error {
	data, err := geojson.EncodeCollection(fc)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return ioutil.WriteFile(path, data, 0644)
}
