package client

// Endpoint names of the distribution API's bulk feeds. The catalog is
// closed: the provider answers exactly these endpoints, so the client
// exposes an accessor per name and rejects everything else.
const (
	EndpointCities                       = "getCities"
	EndpointCountries                    = "getCountries"
	EndpointDistricts                    = "getDistricts"
	EndpointDistrictHotels               = "getDistrictHotels"
	EndpointFacilityTypes                = "getFacilityTypes"
	EndpointHotelDescriptionPhotos       = "getHotelDescriptionPhotos"
	EndpointHotelDescriptionTranslations = "getHotelDescriptionTranslations"
	EndpointHotelDescriptionTypes        = "getHotelDescriptionTypes"
	EndpointHotelFacilities              = "getHotelFacilities"
	EndpointHotelFacilityTypes           = "getHotelFacilityTypes"
	EndpointHotelLogoPhotos              = "getHotelLogoPhotos"
	EndpointHotelPhotos                  = "getHotelPhotos"
	EndpointHotelTranslations            = "getHotelTranslations"
	EndpointHotelTypes                   = "getHotelTypes"
	EndpointHotels                       = "getHotels"
	EndpointRegions                      = "getRegions"
	EndpointRegionHotels                 = "getRegionHotels"
	EndpointRooms                        = "getRooms"
	EndpointRoomTypes                    = "getRoomTypes"
	EndpointRoomFacilityTypes            = "getRoomFacilityTypes"
	EndpointRoomFacilities               = "getRoomFacilities"
	EndpointRoomTranslations             = "getRoomTranslations"
	EndpointRoomPhotos                   = "getRoomPhotos"
)

// Catalog lists every endpoint the client exposes, in the provider's
// documentation order.
var Catalog = []string{
	EndpointCities,
	EndpointCountries,
	EndpointDistricts,
	EndpointDistrictHotels,
	EndpointFacilityTypes,
	EndpointHotelDescriptionPhotos,
	EndpointHotelDescriptionTranslations,
	EndpointHotelDescriptionTypes,
	EndpointHotelFacilities,
	EndpointHotelFacilityTypes,
	EndpointHotelLogoPhotos,
	EndpointHotelPhotos,
	EndpointHotelTranslations,
	EndpointHotelTypes,
	EndpointHotels,
	EndpointRegions,
	EndpointRegionHotels,
	EndpointRooms,
	EndpointRoomTypes,
	EndpointRoomFacilityTypes,
	EndpointRoomFacilities,
	EndpointRoomTranslations,
	EndpointRoomPhotos,
}
